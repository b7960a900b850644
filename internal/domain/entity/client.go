package entity

// Client representa un cliente (persona física o jurídica).
type Client struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	CPFCNPJ string // único; 11 dígitos (CPF) o 14 (CNPJ)
	Address string
}

// DocumentKind devuelve "CPF", "CNPJ" o "" según la cantidad de dígitos.
func (c Client) DocumentKind() string {
	n := 0
	for _, r := range c.CPFCNPJ {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	switch n {
	case 11:
		return "CPF"
	case 14:
		return "CNPJ"
	default:
		return ""
	}
}
