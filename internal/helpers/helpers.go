package helpers

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/skillotech/ambassador-api/internal/logger"
)

// GetSubject - извлекает идентификатор пользователя из контекста JWT токена
func GetSubject(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	subject, ok := claims["sub"].(string)
	if !ok {
		logger.Warn("Undefined subject from token")
		return "", fmt.Errorf("undefined subject")
	}
	return subject, nil
}

// GetRole - извлекает роль пользователя из контекста JWT токена
func GetRole(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	role, ok := claims["role"].(string)
	if !ok {
		logger.Warn("Undefined role from token")
		return "", fmt.Errorf("undefined role")
	}
	return role, nil
}
