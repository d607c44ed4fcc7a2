// =============================================================================
// CSV to SEPA XML Converter - File Utilities
// =============================================================================
//
// File-system helpers shared by the CLI commands: existence checks,
// directory creation, and unique output file naming.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WritableDir reports whether files can be created in dir. Used by the
// doctor command to probe the working and report directories.
func WritableDir(dir string) bool {
	probe, err := os.CreateTemp(dir, ".sepaconv-probe-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}

// GenerateOutputFileName generates a unique output file name from a
// format string.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//               {original}  - Original input file name (without extension)
//   - inputPath: The input file path, used for the {original} placeholder.
//
// RETURNS:
//   - The generated file name, always carrying a .xml extension.
//
// EXAMPLE:
//   format: "{original}_sepa_{timestamp}.xml"
//   input:  "payments.csv"
//   output: "payments_sepa_20240115_143022.xml"
func GenerateOutputFileName(format, inputPath string) string {
	now := time.Now()

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
		"{original}":  base,
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Ensure .xml extension.
	if !strings.HasSuffix(strings.ToLower(result), ".xml") {
		result += ".xml"
	}

	return result
}

// DefaultOutputPath derives the XML output location from the input file:
// "payments.csv" becomes "payments_sepa.xml" next to the input.
func DefaultOutputPath(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), base+"_sepa.xml")
}
