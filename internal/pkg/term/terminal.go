package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
	"golang.org/x/xerrors"
)

// Terminal обеспечивает интерактивную аутентификацию через терминал:
// запрашивает у оператора код подтверждения и пароль 2FA.
// Он реализует интерфейс auth.UserAuthenticator.
type Terminal struct {
	phone string
	in    *bufio.Reader
	out   io.Writer
}

var _ auth.UserAuthenticator = (*Terminal)(nil)

// TerminalOption настраивает Terminal.
type TerminalOption func(*Terminal)

// WithInput задает источник ввода вместо os.Stdin.
func WithInput(r io.Reader) TerminalOption {
	return func(t *Terminal) {
		t.in = bufio.NewReader(r)
	}
}

// WithOutput задает приемник вывода вместо os.Stdout.
func WithOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.out = w
	}
}

// NewTerminal создает новый экземпляр Terminal.
func NewTerminal(phone string, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		phone: phone,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Phone возвращает номер телефона из конфигурации.
func (t *Terminal) Phone(_ context.Context) (string, error) {
	return t.phone, nil
}

// Password запрашивает пароль 2FA без эха.
func (t *Terminal) Password(_ context.Context) (string, error) {
	fmt.Fprint(t.out, "Введите пароль 2FA: ")
	bytePwd, err := termReadPassword()
	if err != nil {
		return "", xerrors.Errorf("failed to read password: %w", err)
	}
	fmt.Fprintln(t.out)
	return string(bytePwd), nil
}

// AcceptTermsOfService принимает Условия обслуживания.
func (t *Terminal) AcceptTermsOfService(_ context.Context, tos tg.HelpTermsOfService) error {
	fmt.Fprintf(t.out, "Принимаем Условия обслуживания: %s\n", tos.Text)
	return nil
}

// Code запрашивает код подтверждения.
func (t *Terminal) Code(_ context.Context, _ *tg.AuthSentCode) (string, error) {
	fmt.Fprint(t.out, "Введите код подтверждения: ")
	code, err := t.in.ReadString('\n')
	if err != nil {
		return "", xerrors.Errorf("failed to read code: %w", err)
	}
	return strings.TrimSpace(code), nil
}

// SignUp не реализован: инструмент работает только с существующими аккаунтами.
func (t *Terminal) SignUp(_ context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, xerrors.New("signup not implemented")
}
