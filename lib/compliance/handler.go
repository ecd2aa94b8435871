package compliance

import (
	"context"
	"fmt"
	"time"
	"workforce-backend/config"
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/compliance/store"
	employeestore "workforce-backend/lib/employee/store"
	filestorage "workforce-backend/lib/file-storage"
	"workforce-backend/lib/smtp"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	documentapimodels "workforce-backend/models/api/document"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateDocument(actorID string, request documentapimodels.DocumentData) (id string, err error)
	UpdateDocument(actorID, id string, request documentapimodels.DocumentData) error
	VerifyDocument(actorID, id string) error
	DeleteDocument(actorID, id string) error
	GetDocument(id string) (view documentapimodels.DocumentView, err error)
	ListDocuments(filter documentapimodels.DocumentFilter) (list []documentapimodels.DocumentView, err error)

	UploadFile(ctx context.Context, actorID, documentID, fileName, contentType string, content []byte) (id string, err error)
	DownloadFile(ctx context.Context, fileID string) (content []byte, fileName, contentType string, err error)

	// Summary - комплектность документов работника относительно
	// требований его правового статуса
	Summary(employeeID string) (view documentapimodels.ComplianceView, err error)

	ListRules() (list []documentapimodels.AlertRuleView, err error)
	SaveRule(actorID string, request documentapimodels.AlertRuleData) (id string, err error)
	UpdateRule(actorID, id string, request documentapimodels.AlertRuleData) error

	ListAlerts(filter documentapimodels.AlertFilter) (list []documentapimodels.AlertView, err error)
	MarkAlertRead(id string) error
	DismissAlert(id string) error
	// GenerateAlerts пересматривает все отслеживаемые даты,
	// для пары (сущность, правило) держит не более одного уведомления
	GenerateAlerts(ctx context.Context) (created, updated int, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:     store.NewInstance(db.DB),
		employees: employeestore.NewInstance(db.DB),
		audit:     audit.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employees", instance.employees,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store     store.Provider
	employees employeestore.Provider
	audit     audit.Provider
}

const entityType = "EmployeeDocument"

func (i impl) CreateDocument(actorID string, request documentapimodels.DocumentData) (id string, err error) {
	if err = request.Validate(); err != nil {
		return "", err
	}
	existed, err := i.store.FindDocument(request.EmployeeID, request.DocumentTypeID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("документ этого вида у работника уже есть")
	}
	rec := dbmodels.EmployeeDocument{
		EmployeeID:     request.EmployeeID,
		DocumentTypeID: request.DocumentTypeID,
		Number:         request.Number,
		IssuedAt:       request.IssuedAt,
		ExpiryDate:     request.ExpiryDate,
	}
	id, err = i.store.SaveDocument(rec)
	if err != nil {
		return "", err
	}
	log.WithField("document_id", id).Info("создан документ работника")
	i.audit.Log(actorID, models.AuditActionCreate, entityType, id,
		dbmodels.EntityChanges{Description: "документ " + request.Number})
	return id, nil
}

func (i impl) UpdateDocument(actorID, id string, request documentapimodels.DocumentData) error {
	existed, err := i.store.GetDocument(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return errors.New("документ не найден")
	}
	updMap := map[string]interface{}{
		"number":    request.Number,
		"issued_at": request.IssuedAt,
	}
	changes := dbmodels.EntityChanges{}
	if existed.Number != request.Number {
		changes.AddChange("number", existed.Number, request.Number)
	}
	// смена реквизитов снимает отметку о проверке
	if request.ExpiryDate != nil {
		updMap["expiry_date"] = request.ExpiryDate
		updMap["is_verified"] = false
		updMap["verified_by"] = ""
	}
	if err = i.store.UpdateDocument(id, updMap); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id, changes)
	return nil
}

func (i impl) VerifyDocument(actorID, id string) error {
	existed, err := i.store.GetDocument(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return errors.New("документ не найден")
	}
	updMap := map[string]interface{}{
		"is_verified": true,
		"verified_by": actorID,
	}
	if err = i.store.UpdateDocument(id, updMap); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id,
		dbmodels.EntityChanges{Description: "документ проверен"})
	return nil
}

func (i impl) DeleteDocument(actorID, id string) error {
	existed, err := i.store.GetDocument(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return errors.New("документ не найден")
	}
	if err = i.store.DeleteDocument(id); err != nil {
		return err
	}
	for _, file := range existed.Files {
		if delErr := filestorage.Instance.Delete(context.Background(), file.StoragePath); delErr != nil {
			log.WithError(delErr).
				WithField("storage_path", file.StoragePath).
				Warn("файл документа не удален из хранилища")
		}
	}
	i.audit.Log(actorID, models.AuditActionDelete, entityType, id, dbmodels.EntityChanges{})
	return nil
}

func (i impl) GetDocument(id string) (documentapimodels.DocumentView, error) {
	rec, err := i.store.GetDocument(id)
	if err != nil {
		return documentapimodels.DocumentView{}, err
	}
	if rec == nil {
		return documentapimodels.DocumentView{}, errors.New("документ не найден")
	}
	return i.convertDocument(*rec), nil
}

func (i impl) ListDocuments(filter documentapimodels.DocumentFilter) (list []documentapimodels.DocumentView, err error) {
	recList, err := i.store.ListDocuments(store.DocumentFilter{EmployeeID: filter.EmployeeID})
	if err != nil {
		return nil, err
	}
	list = make([]documentapimodels.DocumentView, 0, len(recList))
	for _, rec := range recList {
		view := i.convertDocument(rec)
		if filter.Status != "" && view.Status != filter.Status {
			continue
		}
		list = append(list, view)
	}
	return list, nil
}

func (i impl) UploadFile(ctx context.Context, actorID, documentID, fileName, contentType string, content []byte) (id string, err error) {
	if len(content) == 0 {
		return "", errors.New("пустой файл")
	}
	doc, err := i.store.GetDocument(documentID)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", errors.New("документ не найден")
	}
	contentHash := filestorage.ContentHash(content)
	existed, err := i.store.FindFileByHash(documentID, contentHash)
	if err != nil {
		return "", err
	}
	if existed != nil {
		// то же содержимое уже загружено, новая версия не создается
		return existed.ID, nil
	}
	employee, err := i.employees.GetByID(doc.EmployeeID)
	if err != nil {
		return "", err
	}
	if employee == nil {
		return "", errors.New("работник не найден")
	}
	docTypeCode := ""
	if doc.DocumentType != nil {
		docTypeCode = doc.DocumentType.Code
	}
	storagePath := filestorage.BuildPath(employee.EmployeeNo, docTypeCode, contentHash, fileName)
	if err = filestorage.Instance.Upload(ctx, storagePath, content, contentType); err != nil {
		return "", err
	}
	version, err := i.store.NextFileVersion(documentID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.DocumentFile{
		DocumentID:  documentID,
		VersionNo:   version,
		FileName:    fileName,
		StoragePath: storagePath,
		ContentHash: contentHash,
		ContentType: contentType,
		Size:        int64(len(content)),
		UploadedBy:  actorID,
	}
	id, err = i.store.AddFile(rec)
	if err != nil {
		return "", err
	}
	log.WithField("document_id", documentID).
		WithField("version_no", version).
		Info("загружен файл документа")
	i.audit.Log(actorID, models.AuditActionUpload, entityType, documentID,
		dbmodels.EntityChanges{Description: fmt.Sprintf("файл %s, версия %d", fileName, version)})
	return id, nil
}

func (i impl) DownloadFile(ctx context.Context, fileID string) ([]byte, string, string, error) {
	rec, err := i.store.GetFile(fileID)
	if err != nil {
		return nil, "", "", err
	}
	if rec == nil {
		return nil, "", "", errors.New("файл не найден")
	}
	content, err := filestorage.Instance.Download(ctx, rec.StoragePath)
	if err != nil {
		return nil, "", "", err
	}
	return content, rec.FileName, rec.ContentType, nil
}

func (i impl) Summary(employeeID string) (documentapimodels.ComplianceView, error) {
	view := documentapimodels.ComplianceView{
		EmployeeID:   employeeID,
		RequiredDocs: []string{},
		MissingDocs:  []string{},
	}
	documents, err := i.ListDocuments(documentapimodels.DocumentFilter{EmployeeID: employeeID})
	if err != nil {
		return view, err
	}
	view.Documents = documents
	workStatus, err := i.store.GetWorkStatus(employeeID)
	if err != nil {
		return view, err
	}
	if workStatus == nil {
		return view, nil
	}
	view.WorkStatus = string(workStatus.StatusType)
	requirements, err := i.store.ListRequirements(string(workStatus.StatusType))
	if err != nil {
		return view, err
	}
	present := map[string]bool{}
	for _, doc := range documents {
		present[doc.DocumentTypeCode] = true
	}
	for _, req := range requirements {
		view.RequiredDocs = append(view.RequiredDocs, req.DocumentTypeCode)
		if !present[req.DocumentTypeCode] {
			view.MissingDocs = append(view.MissingDocs, req.DocumentTypeCode)
		}
	}
	return view, nil
}

func (i impl) ListRules() (list []documentapimodels.AlertRuleView, err error) {
	recList, err := i.store.ListRules()
	if err != nil {
		return nil, err
	}
	list = make([]documentapimodels.AlertRuleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, documentapimodels.AlertRuleView{
			ID:           rec.ID,
			Name:         rec.Name,
			TrackedField: string(rec.TrackedField),
			WarningDays:  rec.WarningDays,
			CriticalDays: rec.CriticalDays,
			NotifyEmail:  rec.NotifyEmail,
			IsActive:     rec.IsActive,
		})
	}
	return list, nil
}

func (i impl) SaveRule(actorID string, request documentapimodels.AlertRuleData) (id string, err error) {
	rec := dbmodels.AlertRule{
		Name:         request.Name,
		TrackedField: dbmodels.AlertTrackedField(request.TrackedField),
		WarningDays:  request.WarningDays,
		CriticalDays: request.CriticalDays,
		NotifyEmail:  request.NotifyEmail,
		IsActive:     true,
	}
	id, err = i.store.SaveRule(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(actorID, models.AuditActionCreate, "AlertRule", id,
		dbmodels.EntityChanges{Description: request.Name})
	return id, nil
}

func (i impl) UpdateRule(actorID, id string, request documentapimodels.AlertRuleData) error {
	existed, err := i.store.GetRule(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return errors.New("правило уведомлений не найдено")
	}
	if request.WarningDays < request.CriticalDays {
		return errors.New("порог предупреждения не может быть меньше критического")
	}
	updMap := map[string]interface{}{
		"name":          request.Name,
		"warning_days":  request.WarningDays,
		"critical_days": request.CriticalDays,
		"notify_email":  request.NotifyEmail,
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
	}
	if err = i.store.UpdateRule(id, updMap); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, "AlertRule", id, dbmodels.EntityChanges{})
	return nil
}

func (i impl) ListAlerts(filter documentapimodels.AlertFilter) (list []documentapimodels.AlertView, err error) {
	recList, err := i.store.ListAlerts(store.AlertFilter{
		EmployeeID: filter.EmployeeID,
		Severity:   filter.Severity,
		OnlyOpen:   filter.OnlyOpen,
	})
	if err != nil {
		return nil, err
	}
	list = make([]documentapimodels.AlertView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, documentapimodels.AlertView{
			ID:          rec.ID,
			RuleID:      rec.RuleID,
			EntityType:  rec.EntityType,
			EntityID:    rec.EntityID,
			EmployeeID:  rec.EmployeeID,
			Severity:    string(rec.Severity),
			Message:     rec.Message,
			DueDate:     rec.DueDate,
			IsRead:      rec.IsRead,
			IsDismissed: rec.IsDismissed,
		})
	}
	return list, nil
}

func (i impl) MarkAlertRead(id string) error {
	return i.store.UpdateAlert(id, map[string]interface{}{"is_read": true})
}

func (i impl) DismissAlert(id string) error {
	return i.store.UpdateAlert(id, map[string]interface{}{"is_dismissed": true})
}

// trackedDate - кандидат на уведомление по одному правилу
type trackedDate struct {
	entityType string
	entityID   string
	employeeID string
	dueDate    time.Time
	subject    string
}

func (i impl) GenerateAlerts(ctx context.Context) (created, updated int, err error) {
	rules, err := i.store.ListActiveRules()
	if err != nil {
		return 0, 0, errors.Wrap(err, "ошибка получения правил уведомлений")
	}
	now := time.Now()
	for _, rule := range rules {
		candidates, listErr := i.listTracked(rule.TrackedField)
		if listErr != nil {
			return created, updated, listErr
		}
		for _, candidate := range candidates {
			if ctx.Err() != nil {
				return created, updated, ctx.Err()
			}
			daysLeft := DaysLeft(candidate.dueDate, now)
			if daysLeft > rule.WarningDays {
				continue
			}
			severity := models.AlertSeverityWarning
			if daysLeft <= rule.CriticalDays {
				severity = models.AlertSeverityCritical
			}
			outcome, upsertErr := i.upsertAlert(rule, candidate, severity, daysLeft)
			if upsertErr != nil {
				return created, updated, upsertErr
			}
			switch outcome {
			case alertCreated:
				created++
			case alertUpdated:
				updated++
			}
		}
	}
	return created, updated, nil
}

func (i impl) listTracked(field dbmodels.AlertTrackedField) ([]trackedDate, error) {
	switch field {
	case dbmodels.AlertFieldDocumentExpiry:
		documents, err := i.store.ListDocuments(store.DocumentFilter{})
		if err != nil {
			return nil, err
		}
		list := make([]trackedDate, 0, len(documents))
		for _, doc := range documents {
			if doc.ExpiryDate == nil {
				continue
			}
			subject := "документ"
			if doc.DocumentType != nil {
				subject = doc.DocumentType.NameRu
			}
			list = append(list, trackedDate{
				entityType: "EmployeeDocument",
				entityID:   doc.ID,
				employeeID: doc.EmployeeID,
				dueDate:    *doc.ExpiryDate,
				subject:    subject,
			})
		}
		return list, nil
	case dbmodels.AlertFieldWorkStatusValid:
		statuses, err := i.store.ListWorkStatuses()
		if err != nil {
			return nil, err
		}
		list := make([]trackedDate, 0, len(statuses))
		for _, status := range statuses {
			list = append(list, trackedDate{
				entityType: "EmployeeWorkStatus",
				entityID:   status.ID,
				employeeID: status.EmployeeID,
				dueDate:    status.ValidTo,
				subject:    status.StatusType.ToHuman(),
			})
		}
		return list, nil
	case dbmodels.AlertFieldPassportExpiry:
		identities, err := i.store.ListIdentities()
		if err != nil {
			return nil, err
		}
		list := make([]trackedDate, 0, len(identities))
		for _, identity := range identities {
			list = append(list, trackedDate{
				entityType: "EmployeeIdentity",
				entityID:   identity.ID,
				employeeID: identity.EmployeeID,
				dueDate:    identity.PassportExpiry,
				subject:    "паспорт",
			})
		}
		return list, nil
	}
	return nil, errors.Errorf("неизвестное отслеживаемое поле (%s)", field)
}

type alertOutcome int

const (
	alertUnchanged alertOutcome = iota
	alertCreated
	alertUpdated
)

func (i impl) upsertAlert(rule dbmodels.AlertRule, candidate trackedDate, severity models.AlertSeverity, daysLeft int) (outcome alertOutcome, err error) {
	message := fmt.Sprintf("%s: истекает %s (осталось дней: %d)",
		rule.Name, candidate.subject, daysLeft)
	if daysLeft < 0 {
		message = fmt.Sprintf("%s: %s просрочен", rule.Name, candidate.subject)
	}
	existed, err := i.store.FindAlert(rule.ID, candidate.entityID)
	if err != nil {
		return alertUnchanged, err
	}
	if existed != nil {
		// флаги прочтения и скрытия сохраняются при повторной генерации
		if existed.Severity == severity && existed.Message == message {
			return alertUnchanged, nil
		}
		updMap := map[string]interface{}{
			"severity": severity,
			"message":  message,
			"due_date": candidate.dueDate,
		}
		if err = i.store.UpdateAlert(existed.ID, updMap); err != nil {
			return alertUnchanged, err
		}
		if severity == models.AlertSeverityCritical && existed.Severity != models.AlertSeverityCritical {
			i.notify(rule, message)
		}
		return alertUpdated, nil
	}
	rec := dbmodels.Alert{
		RuleID:     rule.ID,
		EntityType: candidate.entityType,
		EntityID:   candidate.entityID,
		EmployeeID: candidate.employeeID,
		Severity:   severity,
		Message:    message,
		DueDate:    candidate.dueDate,
	}
	if _, err = i.store.CreateAlert(rec); err != nil {
		return alertUnchanged, err
	}
	if severity == models.AlertSeverityCritical {
		i.notify(rule, message)
	}
	return alertCreated, nil
}

func (i impl) notify(rule dbmodels.AlertRule, message string) {
	if rule.NotifyEmail == "" || smtp.Instance == nil {
		return
	}
	err := smtp.Instance.SendEMail(config.Conf.Smtp.User, rule.NotifyEmail, message, "Критичное уведомление")
	if err != nil {
		log.WithError(err).
			WithField("rule_id", rule.ID).
			Error("не удалось отправить письмо по критичному уведомлению")
	}
}

func (i impl) convertDocument(rec dbmodels.EmployeeDocument) documentapimodels.DocumentView {
	view := documentapimodels.DocumentView{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		DocumentTypeID: rec.DocumentTypeID,
		Number:         rec.Number,
		IssuedAt:       rec.IssuedAt,
		ExpiryDate:     rec.ExpiryDate,
		IsVerified:     rec.IsVerified,
	}
	docType := dbmodels.DocumentType{}
	if rec.DocumentType != nil {
		docType = *rec.DocumentType
		view.DocumentTypeCode = docType.Code
	}
	status, daysLeft := ClassifyDocument(rec, docType, time.Now())
	view.Status = string(status)
	view.StatusHuman = status.ToHuman()
	view.DaysLeft = daysLeft
	for _, file := range rec.Files {
		view.Files = append(view.Files, documentapimodels.FileView{
			ID:          file.ID,
			VersionNo:   file.VersionNo,
			FileName:    file.FileName,
			ContentType: file.ContentType,
			Size:        file.Size,
			UploadedBy:  file.UploadedBy,
			UploadedAt:  file.CreatedAt,
		})
	}
	return view
}
