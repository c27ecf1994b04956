package auth

import (
	"crypto/rand"
	"math/big"
)

// passwordAlphabet mayúsculas, minúsculas y dígitos sin los caracteres
// visualmente ambiguos (I, O, l, o, 0, 1).
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// generatedPasswordLength largo fijo de las contraseñas generadas.
const generatedPasswordLength = 8

// generatePassword produce una contraseña aleatoria del alfabeto definido.
// Se devuelve una sola vez en la respuesta de registro/import; después solo
// existe su hash.
func generatePassword() (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, generatedPasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
