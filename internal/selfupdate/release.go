package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

type archiveKind int

const (
	archiveTarGz archiveKind = iota
	archiveZip
)

// releaseAsset identifies the downloadable artifact for one platform:
// the archive published on the release and the binary inside it.
type releaseAsset struct {
	Name   string
	binary string
	kind   archiveKind
}

// releaseArches maps GOARCH values to the names goreleaser uses.
var releaseArches = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// releaseAssetFor resolves the asset for a platform. Darwin ships a
// universal binary, so both arm64 and amd64 share one archive.
func releaseAssetFor(goos, goarch string) (releaseAsset, error) {
	switch goos {
	case "darwin":
		return releaseAsset{
			Name:   "pybasics_Darwin_all.tar.gz",
			binary: "pybasics",
			kind:   archiveTarGz,
		}, nil
	case "linux":
		arch, ok := releaseArches[goarch]
		if !ok {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{
			Name:   fmt.Sprintf("pybasics_Linux_%s.tar.gz", arch),
			binary: "pybasics",
			kind:   archiveTarGz,
		}, nil
	case "windows":
		arch, ok := releaseArches[goarch]
		if !ok {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{
			Name:   fmt.Sprintf("pybasics_Windows_%s.zip", arch),
			binary: "pybasics.exe",
			kind:   archiveZip,
		}, nil
	default:
		return releaseAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// currentPlatformAsset resolves the asset for the running binary.
func currentPlatformAsset() (releaseAsset, error) {
	return releaseAssetFor(runtime.GOOS, runtime.GOARCH)
}

// extract pulls the platform binary out of the downloaded archive.
func (a releaseAsset) extract(archiveData []byte) ([]byte, error) {
	if a.kind == archiveZip {
		return extractFromZip(archiveData, a.binary)
	}
	return extractFromTarGz(archiveData, a.binary)
}

// parseChecksums reads a goreleaser checksums.txt: one "<hex>  <asset>"
// pair per line, malformed lines skipped.
func parseChecksums(data []byte) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		result[parts[1]] = parts[0]
	}
	return result
}

func verifyChecksum(data []byte, expectedHex string) error {
	h := sha256.Sum256(data)
	actual := hex.EncodeToString(h[:])
	if actual != expectedHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}

func extractFromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if filepath.Base(hdr.Name) == name && hdr.Typeflag == tar.TypeReg {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func extractFromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}
