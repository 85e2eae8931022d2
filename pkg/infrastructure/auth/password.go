package auth

import "golang.org/x/crypto/bcrypt"

// BcryptPasswordManager hashes passwords with bcrypt at the default cost.
type BcryptPasswordManager struct{}

func NewBcryptPasswordManager() *BcryptPasswordManager {
	return &BcryptPasswordManager{}
}

func (m *BcryptPasswordManager) Hash(plainTextPassword string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (m *BcryptPasswordManager) Compare(hashedPassword, plainTextPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainTextPassword))
}
