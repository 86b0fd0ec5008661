// File: internal/service/password.go
package service

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost 測試時可調低
var passwordCost = bcrypt.DefaultCost

// HashPassword 回傳 bcrypt 雜湊，長度固定 60，符合 users.password 欄位
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// RandomPassword 產生指定長度的隨機密碼，包含大寫、小寫、數字與符號
func RandomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@#$%^&*()-_=+[]{}<>?"
	pwd := make([]byte, length)
	for i := range pwd {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		pwd[i] = charset[n.Int64()]
	}
	return string(pwd), nil
}
