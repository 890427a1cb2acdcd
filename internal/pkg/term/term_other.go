//go:build !unix

package term

import (
	"bufio"
	"os"
	"strings"
)

// На платформах без поддержки x/term пароль читается как обычная строка.
func termReadPassword() ([]byte, error) {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
