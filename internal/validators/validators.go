package validators

import (
	"net/mail"
	"strings"
)

// CheckEmail проверяет, что строка является корректным адресом почты
func CheckEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	address, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// Не допускаем формы с отображаемым именем вида "Name <user@host>"
	return address.Address == email
}

// CheckOtp проверяет, что код подтверждения состоит из шести цифр
func CheckOtp(code string) bool {
	if len(code) != 6 {
		return false
	}

	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
