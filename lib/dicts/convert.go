package dicts

import (
	dictapimodels "workforce-backend/models/api/dict"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
)

func baseEntry(request dictapimodels.DictData) dbmodels.DictEntry {
	return dbmodels.DictEntry{
		Code:     request.Code,
		NameRu:   request.NameRu,
		NameEn:   request.NameEn,
		NameTr:   request.NameTr,
		IsActive: true,
	}
}

func toRecord(kind Kind, request dictapimodels.DictData) (interface{}, error) {
	entry := baseEntry(request)
	switch kind {
	case KindNationality:
		return &dbmodels.Nationality{DictEntry: entry}, nil
	case KindProfession:
		return &dbmodels.Profession{DictEntry: entry}, nil
	case KindDepartment:
		return &dbmodels.Department{DictEntry: entry}, nil
	case KindShift:
		rec := &dbmodels.Shift{DictEntry: entry, StartTime: request.StartTime, EndTime: request.EndTime}
		if request.NightWork != nil {
			rec.NightWork = *request.NightWork
		}
		return rec, nil
	case KindDocumentType:
		rec := &dbmodels.DocumentType{DictEntry: entry, DefaultAlertDays: 30}
		if request.HasExpiry != nil {
			rec.HasExpiry = *request.HasExpiry
		}
		if request.DefaultAlertDays != nil {
			rec.DefaultAlertDays = *request.DefaultAlertDays
		}
		return rec, nil
	case KindLeaveType:
		rec := &dbmodels.LeaveType{DictEntry: entry}
		if request.Paid != nil {
			rec.Paid = *request.Paid
		}
		return rec, nil
	case KindAssetCategory:
		return &dbmodels.AssetCategory{DictEntry: entry}, nil
	}
	return nil, errors.Errorf("неизвестный справочник (%v)", kind)
}

func toView(rec interface{}) dictapimodels.DictView {
	switch model := rec.(type) {
	case *dbmodels.Nationality:
		return entryView(model.ID, model.DictEntry)
	case *dbmodels.Profession:
		return entryView(model.ID, model.DictEntry)
	case *dbmodels.Department:
		return entryView(model.ID, model.DictEntry)
	case *dbmodels.Shift:
		view := entryView(model.ID, model.DictEntry)
		view.StartTime = model.StartTime
		view.EndTime = model.EndTime
		view.NightWork = model.NightWork
		return view
	case *dbmodels.DocumentType:
		view := entryView(model.ID, model.DictEntry)
		view.HasExpiry = model.HasExpiry
		view.DefaultAlertDays = model.DefaultAlertDays
		return view
	case *dbmodels.LeaveType:
		view := entryView(model.ID, model.DictEntry)
		view.Paid = model.Paid
		return view
	case *dbmodels.AssetCategory:
		return entryView(model.ID, model.DictEntry)
	}
	return dictapimodels.DictView{}
}

func entryView(id string, entry dbmodels.DictEntry) dictapimodels.DictView {
	return dictapimodels.DictView{
		ID:       id,
		Code:     entry.Code,
		NameRu:   entry.NameRu,
		NameEn:   entry.NameEn,
		NameTr:   entry.NameTr,
		IsActive: entry.IsActive,
	}
}
