package encryption

import "promoforge-backend/internal/config"

// the master key comes from config, which is only loaded on first use so
// unit tests can construct encryptors directly without an environment
var fieldEncryptor = &SecretKeyFieldEncryptor{
	masterKey: func() string { return config.GetEnv().EncryptionKey },
}

func GetFieldEncryptor() FieldEncryptor {
	return fieldEncryptor
}
