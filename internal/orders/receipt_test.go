package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myshop/internal/entities"
)

func TestReceipt(t *testing.T) {
	engine, shopCatalog, _ := newTestEngine(t)

	_, err := shopCatalog.AddService(context.Background(), "Стирка", 300)
	require.NoError(t, err)
	_, err = shopCatalog.AddService(context.Background(), "Глажка", 150)
	require.NoError(t, err)

	order := entities.Order{
		OrderNumber:   "12345",
		DateFrom:      "01.06.2025",
		DateTo:        "15.06.2025",
		CustomerName:  "Анна",
		CustomerPhone: "+7 900 000-00-00",
		Executor:      "Мария",
		Telegram:      "@anna",
		Status:        entities.StatusInProgress,
		Services:      []string{"Стирка", "Глажка"},
		CreatedAt:     time.Now(),
	}

	expected := "📋 Заказ №12345\n" +
		"📅 Период: 01.06.2025 - 15.06.2025\n" +
		"👤 Покупатель: Анна\n" +
		"📱 Телефон: +7 900 000-00-00\n" +
		"👨‍💼 Исполнитель: Мария\n" +
		"📮 Telegram: @anna\n" +
		"\n" +
		"🛍️ Услуги:\n" +
		"• Стирка - 300 ₽\n" +
		"• Глажка - 150 ₽\n" +
		"\n" +
		"💰 Итого: 450 ₽"

	assert.Equal(t, expected, engine.Receipt(order))
}

func TestReceiptUnresolvedService(t *testing.T) {
	engine, shopCatalog, _ := newTestEngine(t)

	_, err := shopCatalog.AddService(context.Background(), "Стирка", 300)
	require.NoError(t, err)

	order := entities.Order{
		OrderNumber: "54321",
		Services:    []string{"Стирка", "Химчистка"},
	}

	expected := "📋 Заказ №54321\n" +
		"📅 Период:  - \n" +
		"👤 Покупатель: \n" +
		"📱 Телефон: \n" +
		"👨‍💼 Исполнитель: \n" +
		"📮 Telegram: \n" +
		"\n" +
		"🛍️ Услуги:\n" +
		"• Стирка - 300 ₽\n" +
		"• Химчистка - 0 ₽\n" +
		"\n" +
		"💰 Итого: 300 ₽"

	assert.Equal(t, expected, engine.Receipt(order))
}

func TestReceiptFractionalPrice(t *testing.T) {
	engine, shopCatalog, _ := newTestEngine(t)

	_, err := shopCatalog.AddService(context.Background(), "Стирка", 300.5)
	require.NoError(t, err)

	order := entities.Order{
		OrderNumber: "11111",
		Services:    []string{"Стирка"},
	}

	receipt := engine.Receipt(order)
	assert.Contains(t, receipt, "• Стирка - 300.5 ₽")
	assert.Contains(t, receipt, "💰 Итого: 300.5 ₽")
}
