package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expirado indica si un token JWT emitido por el backend ya venció.
//
// El cliente no conoce el secreto de firma (vive en el servidor), así que el
// token se decodifica SIN verificar; el único uso legítimo aquí es descartar
// sesiones vencidas al restaurar, nunca autorizar nada localmente.
// Un token sin claim exp se considera vigente (el backend decide).
func Expirado(tokenString string, now time.Time) (bool, error) {
	if tokenString == "" {
		return false, fmt.Errorf("token: cadena vacía")
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false, fmt.Errorf("token: decodificar: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("token: claim exp: %w", err)
	}
	if exp == nil {
		return false, nil
	}
	return exp.Before(now), nil
}
