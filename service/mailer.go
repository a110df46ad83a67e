package service

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"controle-financeiro/config"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled envio de e-mail desligado na configuração
var ErrEmailDisabled = errors.New("serviço de e-mail desativado, configure email.enabled=true")

// Sender abstrai o envio para permitir testes sem SMTP
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService serviço de e-mail
type EmailService struct {
	cfg    *config.EmailConfig
	sender Sender
}

// NewEmailService cria o serviço com o dialer SMTP da configuração
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Enabled indica se o envio está ligado
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// SendMonthlyReport envia o resumo do mês; chart (PNG) é opcional e vai embutido
func (s *EmailService) SendMonthlyReport(toEmail, name string, report *MonthlyReport, chart []byte) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}

	m := s.newMessage(toEmail, "[Controle Financeiro] Resumo de "+report.Period)
	m.SetBody("text/html", s.generateMonthlyReportBody(name, report, chart != nil))
	if chart != nil {
		m.Embed("grafico.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(chart)
			return err
		}))
	}
	return s.send(m)
}

// generateMonthlyReportBody corpo HTML do resumo
func (s *EmailService) generateMonthlyReportBody(name string, report *MonthlyReport, withChart bool) string {
	var rows strings.Builder
	for _, c := range report.Categories {
		label := semCategoria
		if c.Category != nil {
			label = *c.Category
		}
		fmt.Fprintf(&rows, `<tr><td>%s</td><td class="num">%d</td><td class="num">R$ %s</td></tr>`,
			html.EscapeString(label), c.Count, c.Total.StringFixed(2))
	}

	chartTag := ""
	if withChart {
		chartTag = `<p style="text-align: center;"><img src="cid:grafico.png" alt="Gastos por categoria" width="560"></p>`
	}

	balanceClass := "pos"
	if report.Balance.IsNegative() {
		balanceClass = "neg"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #10b981, #059669); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 16px; }
        table { width: 100%%; border-collapse: collapse; margin: 16px 0; }
        th, td { padding: 8px; border-bottom: 1px solid #eee; text-align: left; }
        .num { text-align: right; }
        .pos { color: #059669; }
        .neg { color: #dc2626; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Controle Financeiro</h1>
        </div>
        <div class="content">
            <p>Olá, <strong>%s</strong>!</p>
            <p>Este é o seu resumo de <strong>%s</strong>.</p>
            <table>
                <tr><th>Receitas recebidas</th><td class="num">R$ %s</td></tr>
                <tr><th>Gastos</th><td class="num">R$ %s</td></tr>
                <tr><th>Saldo</th><td class="num %s">R$ %s</td></tr>
            </table>
            <table>
                <tr><th>Categoria</th><th class="num">Quantidade</th><th class="num">Total</th></tr>
                %s
            </table>
            %s
        </div>
        <div class="footer">
            <p>Este e-mail foi enviado automaticamente, não responda.</p>
        </div>
    </div>
</body>
</html>
`,
		html.EscapeString(name),
		report.Period,
		report.TotalIncome.StringFixed(2),
		report.TotalExpenses.StringFixed(2),
		balanceClass,
		report.Balance.StringFixed(2),
		rows.String(),
		chartTag,
	)
}

func (s *EmailService) newMessage(to, subject string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, "Controle Financeiro"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	return m
}

// send envia a mensagem
func (s *EmailService) send(m *gomail.Message) error {
	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("falha ao enviar e-mail: %w", err)
	}
	return nil
}
