// token emite un Bearer Token para el API HTTP firmado con JWT_SECRET.
//
// Uso: go run ./cmd/token <subject> [admin|operator|viewer]
// Por defecto el rol es viewer.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/warehouse-state/pkg/config"
	"github.com/jhoicas/warehouse-state/pkg/jwt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: token <subject> [admin|operator|viewer]")
		os.Exit(2)
	}
	subject := os.Args[1]
	role := jwt.RoleViewer
	if len(os.Args) > 2 {
		role = os.Args[2]
	}
	switch role {
	case jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleViewer:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido: %s\n", role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido; el API no exige autenticación")
		os.Exit(1)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, subject, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
