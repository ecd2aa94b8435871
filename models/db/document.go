package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

// EmployeeDocument - документ работника с версиями файлов
type EmployeeDocument struct {
	BaseModel
	EmployeeID     string `gorm:"type:varchar(36);index;uniqueIndex:idx_emp_doc_type"`
	DocumentTypeID string `gorm:"type:varchar(36);uniqueIndex:idx_emp_doc_type"`
	Number         string `gorm:"type:varchar(50)"`
	IssuedAt       time.Time
	ExpiryDate     *time.Time `gorm:"index"`
	IsVerified     bool
	VerifiedBy     string `gorm:"type:varchar(36)"`

	DocumentType *DocumentType  `gorm:"foreignKey:DocumentTypeID"`
	Files        []DocumentFile `gorm:"foreignKey:DocumentID"`
}

func (d EmployeeDocument) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if d.DocumentTypeID == "" {
		return errors.New("не указан вид документа")
	}
	return nil
}

// DocumentFile - версия загруженного файла документа,
// путь хранения {табельный_номер}/{код_вида}/{хэш}{расширение}
type DocumentFile struct {
	BaseModel
	DocumentID  string `gorm:"type:varchar(36);index"`
	VersionNo   int
	FileName    string `gorm:"type:varchar(255)"`
	StoragePath string `gorm:"type:varchar(500)"`
	ContentHash string `gorm:"type:varchar(64);index"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64
	UploadedBy  string `gorm:"type:varchar(36)"`
}
