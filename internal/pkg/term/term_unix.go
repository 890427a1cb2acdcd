//go:build unix

package term

import (
	"os"

	"golang.org/x/term"
)

// Чтение пароля без эха через терминал.
func termReadPassword() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}
