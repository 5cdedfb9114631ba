package payment

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
)

// BoletoLine gera uma linha digitável simulada de 47 dígitos, determinística
// por pedido. Nenhum boleto real é emitido.
func BoletoLine(orderID string, total float64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%.2f", orderID, total)))
	digits := new(big.Int).SetBytes(sum[:]).String()
	for len(digits) < 47 {
		digits += digits
	}
	digits = digits[:47]

	// formato banco: 5 blocos no padrão da linha digitável
	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s %s.%s %s.%s %s %s",
		digits[0:5], digits[5:10],
		digits[10:15], digits[15:21],
		digits[21:26], digits[26:32],
		digits[32:33], digits[33:47])
	return b.String()
}
