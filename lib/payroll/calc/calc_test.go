package calc

import (
	"testing"
	"time"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func fullMonthAttendance(days int, hoursPerDay float64) []dbmodels.AttendanceRecord {
	list := make([]dbmodels.AttendanceRecord, 0, days)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for d := 0; d < days; d++ {
		list = append(list, dbmodels.AttendanceRecord{
			Date:           date.AddDate(0, 0, d),
			AttendanceType: models.AttendanceNormal,
			TotalHours:     hoursPerDay,
		})
	}
	return list
}

func TestComputeMonthlyNetBasis(t *testing.T) {
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType:   models.PaymentTypeMonthly,
			SalaryBasis:   models.SalaryBasisNet,
			MonthlySalary: decimal.NewFromInt(85000),
			TaxStatus:     models.TaxStatusResident,
		},
		Attendance:    fullMonthAttendance(22, 8),
		StandardDays:  22,
		StandardHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, 22, res.WorkedDays)
	require.Equal(t, "97665", res.GrossAmount.String())
	require.Equal(t, "12696.45", res.TaxAmount.String())
	require.Equal(t, "84968.55", res.NetAmount.String())
}

func TestComputeHourlyPatent(t *testing.T) {
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType: models.PaymentTypeHourly,
			SalaryBasis: models.SalaryBasisGross,
			HourlyRate:  decimal.NewFromInt(350),
			TaxStatus:   models.TaxStatusResident,
		},
		Attendance:    fullMonthAttendance(20, 8),
		StandardDays:  22,
		StandardHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, float64(160), res.WorkedHours)
	require.Equal(t, "56000", res.GrossAmount.String())
	require.Equal(t, "7280", res.TaxAmount.String())
	require.Equal(t, "48720", res.NetAmount.String())
}

func TestComputeMonthlyProRata(t *testing.T) {
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType:   models.PaymentTypeMonthly,
			SalaryBasis:   models.SalaryBasisGross,
			MonthlySalary: decimal.NewFromInt(110000),
			TaxStatus:     models.TaxStatusResident,
		},
		Attendance:    fullMonthAttendance(11, 8),
		StandardDays:  22,
		StandardHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, "55000", res.BaseAmount.String())
}

func TestComputeOvertimeAndNight(t *testing.T) {
	attendance := fullMonthAttendance(22, 8)
	attendance[0].OvertimeHours = 2
	attendance[1].NightHours = 4
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType:        models.PaymentTypeHourly,
			SalaryBasis:        models.SalaryBasisGross,
			HourlyRate:         decimal.NewFromInt(100),
			OvertimeMultiplier: decimal.RequireFromString("1.5"),
			NightMultiplier:    decimal.RequireFromString("1.2"),
			HolidayMultiplier:  decimal.NewFromInt(2),
			TaxStatus:          models.TaxStatusResident,
		},
		Attendance:    attendance,
		StandardDays:  22,
		StandardHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, "300", res.OvertimeAmount.String())
	require.Equal(t, "480", res.NightAmount.String())
	// 17600 базы + 300 сверхурочных + 480 ночных
	require.Equal(t, "18380", res.GrossAmount.String())
}

func TestComputeHolidayPremium(t *testing.T) {
	attendance := fullMonthAttendance(2, 8)
	attendance[1].AttendanceType = models.AttendanceHoliday
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType:        models.PaymentTypeDaily,
			SalaryBasis:        models.SalaryBasisGross,
			DailyRate:          decimal.NewFromInt(4000),
			OvertimeMultiplier: decimal.RequireFromString("1.5"),
			NightMultiplier:    decimal.RequireFromString("1.2"),
			HolidayMultiplier:  decimal.NewFromInt(2),
			TaxStatus:          models.TaxStatusResident,
		},
		Attendance:    attendance,
		StandardDays:  22,
		StandardHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, "8000", res.BaseAmount.String())
	// 8 праздничных часов по ставке 500/час с коэффициентом 2
	require.Equal(t, "8000", res.HolidayAmount.String())
}

func TestComputeNonResidentRate(t *testing.T) {
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType:   models.PaymentTypeMonthly,
			SalaryBasis:   models.SalaryBasisGross,
			MonthlySalary: decimal.NewFromInt(100000),
			TaxStatus:     models.TaxStatusNonResident,
		},
		Attendance:    fullMonthAttendance(22, 8),
		StandardDays:  22,
		StandardHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, "30000", res.TaxAmount.String())
	require.Equal(t, "70000", res.NetAmount.String())
}

func TestComputeEarningsDeductionsAdjustment(t *testing.T) {
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType:   models.PaymentTypeMonthly,
			SalaryBasis:   models.SalaryBasisGross,
			MonthlySalary: decimal.NewFromInt(50000),
			TaxStatus:     models.TaxStatusResident,
		},
		Attendance:       fullMonthAttendance(22, 8),
		Earnings:         decimal.NewFromInt(10000),
		Deductions:       decimal.NewFromInt(3000),
		ManualAdjustment: decimal.NewFromInt(500),
		StandardDays:     22,
		StandardHours:    8,
	})
	require.NoError(t, err)
	require.Equal(t, "60000", res.GrossAmount.String())
	require.Equal(t, "7800", res.TaxAmount.String())
	// 60000 - 7800 - 3000 + 500
	require.Equal(t, "49700", res.NetAmount.String())
}

func TestComputeEmptyAttendance(t *testing.T) {
	res, err := Compute(Input{
		Profile: dbmodels.EmployeeSalaryProfile{
			PaymentType:   models.PaymentTypeMonthly,
			SalaryBasis:   models.SalaryBasisGross,
			MonthlySalary: decimal.NewFromInt(85000),
			TaxStatus:     models.TaxStatusResident,
		},
		StandardDays:  22,
		StandardHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, 0, res.WorkedDays)
	require.True(t, res.GrossAmount.IsZero())
	require.True(t, res.NetAmount.IsZero())
}

func TestGrossUpCoefficient(t *testing.T) {
	require.Equal(t, "1.149", GrossUpCoefficient(taxRateResident).String())
	require.Equal(t, "1.429", GrossUpCoefficient(taxRateNonResident).String())
}
