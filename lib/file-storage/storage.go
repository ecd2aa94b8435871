package filestorage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"workforce-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, storagePath string, content []byte, contentType string) error
	Download(ctx context.Context, storagePath string) ([]byte, error)
	Delete(ctx context.Context, storagePath string) error
}

var Instance Provider

// NewInstance выбирает бекенд хранения: S3 при настроенном клиенте,
// иначе локальный каталог из конфигурации
func NewInstance(s3client *minio.Client) {
	if s3client != nil {
		Instance = &s3Impl{
			client: s3client,
			bucket: config.Conf.S3.BucketName,
		}
		return
	}
	log.Warn("S3 не настроен, файлы документов хранятся в локальном каталоге")
	Instance = &localImpl{
		baseDir: config.Conf.FileStorage.LocalDir,
	}
}

// ContentHash - sha-256 содержимого в hex, используется
// для пути хранения и дедупликации версий
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// BuildPath собирает путь хранения {табельный_номер}/{код_вида}/{хэш}{расширение}
func BuildPath(employeeNo, docTypeCode, contentHash, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return path.Join(employeeNo, strings.ToLower(docTypeCode), contentHash+ext)
}

type s3Impl struct {
	client *minio.Client
	bucket string
}

func (i s3Impl) Upload(ctx context.Context, storagePath string, content []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.client.PutObject(ctx, i.bucket, storagePath,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	return nil
}

func (i s3Impl) Download(ctx context.Context, storagePath string) ([]byte, error) {
	object, err := i.client.GetObject(ctx, i.bucket, storagePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	content, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return content, nil
}

func (i s3Impl) Delete(ctx context.Context, storagePath string) error {
	err := i.client.RemoveObject(ctx, i.bucket, storagePath, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из S3")
	}
	return nil
}

type localImpl struct {
	baseDir string
}

func (i localImpl) fullPath(storagePath string) string {
	return filepath.Join(i.baseDir, filepath.FromSlash(storagePath))
}

func (i localImpl) Upload(_ context.Context, storagePath string, content []byte, _ string) error {
	full := i.fullPath(storagePath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.Wrap(err, "ошибка создания каталога хранилища")
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return errors.Wrap(err, "ошибка записи файла")
	}
	return nil
}

func (i localImpl) Download(_ context.Context, storagePath string) ([]byte, error) {
	content, err := os.ReadFile(i.fullPath(storagePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("файл не найден (%s)", storagePath)
		}
		return nil, errors.Wrap(err, "ошибка чтения файла")
	}
	return content, nil
}

func (i localImpl) Delete(_ context.Context, storagePath string) error {
	err := os.Remove(i.fullPath(storagePath))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "ошибка удаления файла")
	}
	return nil
}
