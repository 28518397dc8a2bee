package service

import (
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

const (
	refCodeCharset     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	refCodeLength      = 10
	maxRefCodeAttempts = 10
)

var newRefCode = func() string {
	b := make([]byte, refCodeLength)
	for i := range b {
		b[i] = refCodeCharset[rand.Intn(len(refCodeCharset))]
	}
	return string(b)
}

// uniqueRefCode draws codes until one is unused, giving up after a bounded
// number of attempts. The ref_code column also carries a unique index, so a
// code that slips through a concurrent draw still fails at commit instead of
// aliasing another order.
func uniqueRefCode(tx *gorm.DB) (string, error) {
	for i := 0; i < maxRefCodeAttempts; i++ {
		code := newRefCode()
		var count int64
		err := tx.Model(&model.Order{}).Where("ref_code = ?", code).Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("no unused reference code after %d attempts", maxRefCodeAttempts)
}
