package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateSixDigitCode возвращает код равномерно из [100000, 999999].
// Неугадываемость кода это единственная защита пути привязки, поэтому
// источник только crypto/rand.
func generateSixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
