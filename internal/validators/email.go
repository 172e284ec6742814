package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid valida sintaxe e faz uma checagem leve de DNS no
// domínio. Não garante que a caixa existe, só barra domínio inventado.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return false
	}

	domain := addr.Address[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
