// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatVector], [Fingerprint].
//
//   - Print* functions write the run headers.
//     Examples: [PrintExecutionConfig], [PrintExecutionMode].

package cli

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/agbru/mulbench/internal/format"
	"github.com/agbru/mulbench/internal/multiply"
	"github.com/agbru/mulbench/internal/ui"
)

// FingerprintSize is the digest length in bytes.
const FingerprintSize = 16

// Fingerprint returns a short BLAKE2b digest of v's little-endian
// encoding, so that products too long to print can still be compared by
// eye across runs.
func Fingerprint(v multiply.Vector) string {
	h, err := blake2b.New(FingerprintSize, nil)
	if err != nil {
		// Only an invalid size or key can fail.
		panic(err)
	}
	var buf [8]byte
	for _, c := range v {
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// FormatVector renders v, eliding the middle when it has more than
// TruncationLimit coefficients unless verbose is set. The second result
// reports whether the vector was truncated.
func FormatVector(v multiply.Vector, verbose bool) (string, bool) {
	if verbose || len(v) <= TruncationLimit {
		return v.String(), false
	}
	head := strings.TrimSuffix(v[:DisplayEdges].String(), "]")
	tail := strings.TrimPrefix(v[len(v)-DisplayEdges:].String(), "[")
	return fmt.Sprintf("%s, ... (%d more), %s", head, len(v)-2*DisplayEdges, tail), true
}

// DisplayQuietResult prints only the product, for scripting.
func DisplayQuietResult(out io.Writer, product multiply.Vector) {
	fmt.Fprintln(out, product.String())
}

// DisplayResult prints the operands, the product and its fingerprint.
func DisplayResult(product, a, b multiply.Vector, duration time.Duration, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "Operand length:  %s%s%s coefficients\n", ui.ColorCyan(), format.FormatInt(len(a)), ui.ColorReset())
	fmt.Fprintf(out, "Product length:  %s%s%s coefficients\n", ui.ColorCyan(), format.FormatInt(len(product)), ui.ColorReset())
	fmt.Fprintf(out, "Calculation time: %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "Fingerprint:     %s%s%s\n", ui.ColorMagenta(), Fingerprint(product), ui.ColorReset())

	if verbose && a != nil && b != nil {
		as, _ := FormatVector(a, true)
		bs, _ := FormatVector(b, true)
		fmt.Fprintf(out, "a = %s\nb = %s\n", as, bs)
	}
	s, truncated := FormatVector(product, verbose)
	fmt.Fprintf(out, "a × b = %s\n", s)
	if truncated {
		fmt.Fprintf(out, "%s(truncated) Tip: use -v to print every coefficient.%s\n", ui.ColorYellow(), ui.ColorReset())
	}
}
