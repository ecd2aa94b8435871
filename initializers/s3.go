package initializers

import (
	"context"
	"workforce-backend/config"
	filestorage "workforce-backend/lib/file-storage"
	s3client "workforce-backend/s3"

	log "github.com/sirupsen/logrus"
)

// InitFileStorage подключает S3, при его отсутствии файлы
// сохраняются в локальный каталог
func InitFileStorage(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		filestorage.NewInstance(nil)
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		filestorage.NewInstance(nil)
		return
	}
	if err = s3client.EnsureBucket(ctx, minioClient); err != nil {
		log.WithError(err).Error("Ошибка проверки бакета S3")
		filestorage.NewInstance(nil)
		return
	}
	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
