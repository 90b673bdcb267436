package orders

import (
	"fmt"
	"strings"

	"myshop/internal/entities"
	"myshop/internal/services/price"
)

// Receipt renders the textual order summary shown to the operator.
// Prices are resolved against the current catalog, unresolved service
// names are listed with price 0.
func (e *Engine) Receipt(order entities.Order) string {
	lines := make([]string, len(order.Services))
	for i, name := range order.Services {
		servicePrice, _ := e.prices.ServicePrice(name)
		lines[i] = fmt.Sprintf("• %s - %s ₽", name, price.Format(servicePrice))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 Заказ №%s\n", order.OrderNumber))
	sb.WriteString(fmt.Sprintf("📅 Период: %s - %s\n", order.DateFrom, order.DateTo))
	sb.WriteString(fmt.Sprintf("👤 Покупатель: %s\n", order.CustomerName))
	sb.WriteString(fmt.Sprintf("📱 Телефон: %s\n", order.CustomerPhone))
	sb.WriteString(fmt.Sprintf("👨‍💼 Исполнитель: %s\n", order.Executor))
	sb.WriteString(fmt.Sprintf("📮 Telegram: %s\n", order.Telegram))
	sb.WriteString("\n🛍️ Услуги:\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString(fmt.Sprintf("\n\n💰 Итого: %s ₽", price.Format(e.ComputeTotal(order))))

	return sb.String()
}
