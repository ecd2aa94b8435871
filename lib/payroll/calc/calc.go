package calc

import (
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	one                = decimal.NewFromInt(1)
	taxRateResident    = decimal.RequireFromString("0.13")
	taxRateNonResident = decimal.RequireFromString("0.30")
)

// TaxRate возвращает ставку НДФЛ по налоговому статусу зарплатного профиля.
// Статус профиля - единственный источник ставки при расчете
func TaxRate(status models.TaxStatus) decimal.Decimal {
	if status == models.TaxStatusNonResident {
		return taxRateNonResident
	}
	return taxRateResident
}

// GrossUpCoefficient - коэффициент пересчета "на руки" в начисление,
// округляется до трех знаков до применения к окладу
func GrossUpCoefficient(rate decimal.Decimal) decimal.Decimal {
	return one.Div(one.Sub(rate)).Round(3)
}

// Input - данные расчета по одному работнику за месяц
type Input struct {
	Profile          dbmodels.EmployeeSalaryProfile
	Attendance       []dbmodels.AttendanceRecord
	Earnings         decimal.Decimal // одобренные разовые начисления
	Deductions       decimal.Decimal // одобренные удержания
	ManualAdjustment decimal.Decimal
	StandardDays     int // норма рабочих дней в месяце
	StandardHours    int // норма часов в смене
}

// Result - разложение начисления по строке ведомости
type Result struct {
	WorkedDays    int
	WorkedHours   float64
	OvertimeHours float64
	NightHours    float64
	HolidayHours  float64

	BaseAmount       decimal.Decimal
	OvertimeAmount   decimal.Decimal
	NightAmount      decimal.Decimal
	HolidayAmount    decimal.Decimal
	EarningsAmount   decimal.Decimal
	GrossAmount      decimal.Decimal
	TaxAmount        decimal.Decimal
	DeductionsAmount decimal.Decimal
	ManualAdjustment decimal.Decimal
	NetAmount        decimal.Decimal
}

// Compute считает начисление работника за месяц из табеля и профиля.
// Чистая функция без обращений к базе
func Compute(in Input) (Result, error) {
	if in.StandardDays <= 0 || in.StandardHours <= 0 {
		return Result{}, errors.New("не задана норма рабочего времени")
	}
	res := Result{
		EarningsAmount:   in.Earnings,
		DeductionsAmount: in.Deductions,
		ManualAdjustment: in.ManualAdjustment,
	}
	for _, rec := range in.Attendance {
		if rec.TotalHours > 0 {
			res.WorkedDays++
		}
		res.WorkedHours += rec.TotalHours
		res.OvertimeHours += rec.OvertimeHours
		res.NightHours += rec.NightHours
		if rec.AttendanceType == models.AttendanceHoliday {
			res.HolidayHours += rec.TotalHours
		}
	}

	rate := TaxRate(in.Profile.TaxStatus)
	monthlyGross := in.Profile.MonthlySalary
	if in.Profile.SalaryBasis == models.SalaryBasisNet {
		monthlyGross = monthlyGross.Mul(GrossUpCoefficient(rate)).Round(2)
	}

	standardDays := decimal.NewFromInt(int64(in.StandardDays))
	standardMonthHours := decimal.NewFromInt(int64(in.StandardDays * in.StandardHours))
	workedDays := decimal.NewFromInt(int64(res.WorkedDays))
	workedHours := decimal.NewFromFloat(res.WorkedHours)

	var hourlyEquivalent decimal.Decimal
	switch in.Profile.PaymentType {
	case models.PaymentTypeMonthly:
		res.BaseAmount = monthlyGross.Mul(workedDays).Div(standardDays).Round(2)
		hourlyEquivalent = monthlyGross.Div(standardMonthHours)
	case models.PaymentTypeDaily:
		res.BaseAmount = in.Profile.DailyRate.Mul(workedDays).Round(2)
		hourlyEquivalent = in.Profile.DailyRate.Div(decimal.NewFromInt(int64(in.StandardHours)))
	case models.PaymentTypeHourly:
		res.BaseAmount = in.Profile.HourlyRate.Mul(workedHours).Round(2)
		hourlyEquivalent = in.Profile.HourlyRate
	case models.PaymentTypePieceRate:
		res.BaseAmount = in.Profile.PieceRate.Round(2)
		hourlyEquivalent = in.Profile.PieceRate.Div(standardMonthHours)
	default:
		return Result{}, errors.Errorf("неизвестный тип оплаты (%v)", in.Profile.PaymentType)
	}

	res.OvertimeAmount = hourlyEquivalent.
		Mul(decimal.NewFromFloat(res.OvertimeHours)).
		Mul(in.Profile.OvertimeMultiplier).
		Round(2)
	res.NightAmount = hourlyEquivalent.
		Mul(decimal.NewFromFloat(res.NightHours)).
		Mul(in.Profile.NightMultiplier).
		Round(2)
	res.HolidayAmount = hourlyEquivalent.
		Mul(decimal.NewFromFloat(res.HolidayHours)).
		Mul(in.Profile.HolidayMultiplier).
		Round(2)

	res.GrossAmount = res.BaseAmount.
		Add(res.OvertimeAmount).
		Add(res.NightAmount).
		Add(res.HolidayAmount).
		Add(res.EarningsAmount)
	res.TaxAmount = res.GrossAmount.Mul(rate).Round(2)
	res.NetAmount = res.GrossAmount.
		Sub(res.TaxAmount).
		Sub(res.DeductionsAmount).
		Add(res.ManualAdjustment)
	return res, nil
}
