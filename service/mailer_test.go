package service

import (
	"testing"

	"controle-financeiro/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func newTestEmailService(enabled bool) (*EmailService, *fakeSender) {
	sender := &fakeSender{}
	s := NewEmailService(&config.EmailConfig{Enabled: enabled, From: "noreply@financeiro.local"})
	s.sender = sender
	return s, sender
}

func sampleReport() *MonthlyReport {
	return &MonthlyReport{
		Period:        "2/2024",
		TotalExpenses: decimal.NewFromInt(70),
		TotalIncome:   decimal.NewFromInt(100),
		Balance:       decimal.NewFromInt(30),
		Categories: []CategoryTotal{
			{Category: strPtr("Alimentação"), Total: decimal.NewFromInt(50), Count: 2},
			{Total: decimal.NewFromInt(20), Count: 1},
		},
	}
}

func TestGenerateMonthlyReportBody(t *testing.T) {
	s, _ := newTestEmailService(true)
	body := s.generateMonthlyReportBody("<Ana>", sampleReport(), true)

	assert.Contains(t, body, "&lt;Ana&gt;")
	assert.Contains(t, body, "2/2024")
	assert.Contains(t, body, "R$ 100.00")
	assert.Contains(t, body, "R$ 30.00")
	assert.Contains(t, body, "Alimentação")
	assert.Contains(t, body, "Sem categoria")
	assert.Contains(t, body, `class="num pos"`)
	assert.Contains(t, body, "cid:grafico.png")

	body = s.generateMonthlyReportBody("Ana", sampleReport(), false)
	assert.NotContains(t, body, "cid:grafico.png")
}

func TestSendMonthlyReport(t *testing.T) {
	s, sender := newTestEmailService(true)

	require.NoError(t, s.SendMonthlyReport("ana@email.com", "Ana", sampleReport(), []byte("\x89PNG")))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"ana@email.com"}, sender.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"[Controle Financeiro] Resumo de 2/2024"}, sender.sent[0].GetHeader("Subject"))

	sender.err = assert.AnError
	err := s.SendMonthlyReport("ana@email.com", "Ana", sampleReport(), nil)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSendMonthlyReport_Disabled(t *testing.T) {
	s, sender := newTestEmailService(false)
	assert.False(t, s.Enabled())

	err := s.SendMonthlyReport("ana@email.com", "Ana", sampleReport(), nil)
	assert.ErrorIs(t, err, ErrEmailDisabled)
	assert.Empty(t, sender.sent)
}
