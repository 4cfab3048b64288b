package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const exportPrefix = "interview_summary_"

var ErrFileNotFound = errors.New("file not found")

type StorageService interface {
	EnsureDirs() error
	SaveFile(file *multipart.FileHeader, fileType string) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	CreateTempFile(ext string, data []byte) (string, error)
	RemoveFile(path string)
	SaveExport(content []byte) (string, error)
	ResolveExport(path string) (string, error)
	SweepExports(maxAge time.Duration) (int, error)
}

type storageService struct {
	uploadPath string
	exportPath string
	tempDir    string
}

func NewStorageService(uploadPath, exportPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
		exportPath: exportPath,
		tempDir:    os.TempDir(),
	}
}

func (s *storageService) EnsureDirs() error {
	for _, dir := range []string{s.uploadPath, s.exportPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// SaveFile stores an uploaded PDF under a unique name.
func (s *storageService) SaveFile(file *multipart.FileHeader, fileType string) (string, string, error) {
	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", "", fmt.Errorf("invalid file extension: %s", ext)
	}

	uniqueFilename := fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// CreateTempFile writes data to a randomly named file in the OS temp dir.
func (s *storageService) CreateTempFile(ext string, data []byte) (string, error) {
	f, err := os.CreateTemp(s.tempDir, "interview-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return f.Name(), nil
}

// RemoveFile deletes path, ignoring every error.
func (s *storageService) RemoveFile(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

func (s *storageService) SaveExport(content []byte) (string, error) {
	filePath := filepath.Join(s.exportPath, exportPrefix+uuid.New().String()+".html")
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return filePath, nil
}

// ResolveExport checks that path is a live export file.
func (s *storageService) ResolveExport(path string) (string, error) {
	if path == "" || !s.isExport(path) {
		return "", ErrFileNotFound
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrFileNotFound
	}
	return path, nil
}

// SweepExports deletes export files older than maxAge and reports how many
// were removed. Other files in the export directory are left alone.
func (s *storageService) SweepExports(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.exportPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read export directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), exportPrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.exportPath, entry.Name())); err == nil {
			removed++
		}
	}

	return removed, nil
}

func (s *storageService) isExport(path string) bool {
	return filepath.Dir(filepath.Clean(path)) == filepath.Clean(s.exportPath) &&
		strings.HasPrefix(filepath.Base(path), exportPrefix)
}
