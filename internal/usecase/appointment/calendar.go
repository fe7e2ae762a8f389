package appointment

import (
	"context"
	"time"

	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

// ======================================================
// USE CASE — calendário do mês
// ======================================================

type CalendarDay struct {
	Date     string `json:"data"`
	Bookable bool   `json:"bookable"`
	Holiday  string `json:"feriado,omitempty"`
}

type GetCalendarMonth struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetCalendarMonth(repo domain.Repository) *GetCalendarMonth {
	return &GetCalendarMonth{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute marca cada dia do mês como agendável ou não para o
// profissional, anotando feriados. Feriado não bloqueia: só anota.
func (uc *GetCalendarMonth) Execute(
	ctx context.Context,
	professionalID uint,
	year int,
	month int,
) ([]CalendarDay, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	pro, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.Location())
	end := start.AddDate(0, 1, -1)

	holidays, err := uc.repo.ListHolidays(
		ctx,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	holidayByDate := make(map[string]string, len(holidays))
	for _, h := range holidays {
		holidayByDate[h.Date] = h.Name
	}

	now := uc.now()
	days := make([]CalendarDay, 0, end.Day())

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		days = append(days, CalendarDay{
			Date:     dateStr,
			Bookable: domain.IsDateBookable(d, now, pro.AttendedDays),
			Holiday:  holidayByDate[dateStr],
		})
	}

	return days, nil
}
