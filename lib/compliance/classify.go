package compliance

import (
	"math"
	"time"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"
)

// DaysLeft считает полные дни до истечения срока, неполный день в большую сторону
func DaysLeft(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// ClassifyDocument определяет статус документа на момент расчета.
// Для видов без срока действия статус зависит только от проверки
func ClassifyDocument(doc dbmodels.EmployeeDocument, docType dbmodels.DocumentType, now time.Time) (status models.DocumentStatus, daysLeft *int) {
	if !docType.HasExpiry || doc.ExpiryDate == nil {
		if doc.IsVerified {
			return models.DocumentStatusVerified, nil
		}
		return models.DocumentStatusUploaded, nil
	}
	days := DaysLeft(*doc.ExpiryDate, now)
	switch {
	case days < 0:
		return models.DocumentStatusExpired, &days
	case days <= docType.DefaultAlertDays:
		return models.DocumentStatusExpiringSoon, &days
	default:
		return models.DocumentStatusValid, &days
	}
}
