package scan

import "os/exec"

// runTesseract shells out to the tesseract binary. Receipts here mix
// Spanish and English, so both language packs are loaded.
func runTesseract(imagePath string) (string, error) {
	cmd := exec.Command("tesseract", imagePath, "stdout", "-l", "spa+eng")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
