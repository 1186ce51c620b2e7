// mail отвечает за отправку служебных писем (подтверждение регистрации,
// восстановление пароля). С точки зрения сервиса отправка — fire-and-forget:
// ошибки логируются, но не влияют на результат операции.
package mail

import "context"

// Sender — минимальный контракт отправителя писем.
type Sender interface {
	// Send отправляет письмо с HTML-телом на указанный адрес.
	Send(ctx context.Context, to, subject, html string) error
}

// Letter — готовое к отправке письмо.
type Letter struct {
	Subject string
	HTML    string
}

// ConfirmationLetter собирает письмо с кодом подтверждения регистрации.
func ConfirmationLetter(code string) Letter {
	return Letter{
		Subject: "Finish registration",
		HTML: `<h1>Thanks for your registration</h1>
<p>To finish registration please follow the link below:
<a href="https://blogger-platform.io/confirm-email?code=` + code + `">complete registration</a>
</p>`,
	}
}

// RecoveryLetter собирает письмо с кодом восстановления пароля.
func RecoveryLetter(code string) Letter {
	return Letter{
		Subject: "Password recovery",
		HTML: `<h1>Password recovery</h1>
<p>To finish password recovery please follow the link below:
<a href="https://blogger-platform.io/password-recovery?recoveryCode=` + code + `">recovery password</a>
</p>`,
	}
}
