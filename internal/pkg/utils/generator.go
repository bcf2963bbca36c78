package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"medibridge-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// GenerateReceiptID produces a gateway receipt id, format BILL-YYYYMMDD-XXXXX.
func GenerateReceiptID() string {
	now := time.Now()
	random := rand.Intn(90000) + 10000
	return fmt.Sprintf("BILL-%s-%d", now.Format("20060102"), random)
}

// GenerateObjectName builds a collision-resistant object name for uploads:
// <field>-<unixnano>-<uuid><ext>, keeping the original extension only.
func GenerateObjectName(fieldName, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixNano(), uuid.NewString(), ext)
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
