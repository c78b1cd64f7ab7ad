package tools

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodePath returns the image path for a user/plan pair. A later purchase
// for the same pair overwrites the same file.
func QRCodePath(dir string, userID, planID int64) string {
	return filepath.Join(dir, fmt.Sprintf("%d_%d.png", userID, planID))
}

// WriteQRCode renders the checkout URL as a scannable PNG.
// Declared as a var so tests can swap it out.
var WriteQRCode = func(url, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return qrcode.WriteFile(url, qrcode.Medium, 256, path)
}
