// hashpw genera el hash bcrypt para AUTH_PASSWORD_HASH.
//
// Uso: go run ./cmd/hashpw <contraseña>
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/inventario-bom/internal/application/auth"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "uso: hashpw <contraseña>")
		os.Exit(2)
	}
	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
