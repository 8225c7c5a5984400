package common

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex blake2b-256 digest of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FileHeader renders the "generated, do not edit" banner for a generated file.
// It contains no timestamps so that regenerating from the same input is a no-op.
func FileHeader(comment, toolVersion, assetFile, digest string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Code generated by glb2ts %s. DO NOT EDIT.\n", comment, CommentSafe(toolVersion))
	fmt.Fprintf(&b, "%s Source: %s\n", comment, CommentSafe(assetFile))
	if digest != "" {
		fmt.Fprintf(&b, "%s Metadata digest (blake2b-256): %s\n", comment, digest)
	}
	return b.String()
}
