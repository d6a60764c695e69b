package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rtservizi/fieldtrack/internal/models"
	"gorm.io/gorm"
)

// Date formats accepted on the query surface.
const (
	// MonthFormat selects a calendar month ("MM/YYYY").
	MonthFormat = "01/2006"
	// DateFormat bounds an interval ("YYYY-MM-DD").
	DateFormat = "2006-01-02"
)

// reportColumns is the shared projection of the reports table used by the
// joined listing queries.
const reportColumns = `reports.id AS report_id, reports.date, reports.created_at,
reports.intervention_duration, reports.intervention_type, reports.intervention_location,
reports.description, reports.supervisor, reports.notes, reports.trip_kms, reports.cost,
reports.work_type, reports.work_id, reports.operator_id`

// ReportRow is a report listing row with its polymorphic target resolved.
// Exactly one of the commission or machine columns is populated, matching
// the report's work type.
type ReportRow struct {
	ReportID             uint64
	Date                 time.Time
	CreatedAt            time.Time
	InterventionDuration string
	InterventionType     string
	InterventionLocation string
	Description          string
	Supervisor           string
	Notes                string
	TripKms              string
	Cost                 string
	WorkType             models.WorkKind
	WorkID               uint64
	CommissionID         *uint64
	CommissionCode       *string
	MachineID            *uint64
	MachineName          *string
	OperatorID           uint64
	OperatorFirstName    string
	OperatorLastName     string
	ClientID             uint64
	ClientName           string
}

// Work returns the resolved polymorphic reference of the row.
func (r ReportRow) Work() WorkRef {
	return WorkRef{Kind: r.WorkType, ID: r.WorkID}
}

// ReportDetail is a single report enriched for detail views with commission
// and plant names on top of the listing columns.
type ReportDetail struct {
	ReportRow
	CommissionDescription *string
	PlantID               *uint64
	PlantName             *string
}

// MonthReportRow is a report row for the month view: polymorphic target
// labels only, no client or plant enrichment.
type MonthReportRow struct {
	ReportID             uint64
	Date                 time.Time
	CreatedAt            time.Time
	InterventionDuration string
	InterventionType     string
	InterventionLocation string
	Description          string
	Supervisor           string
	Notes                string
	TripKms              string
	Cost                 string
	WorkType             models.WorkKind
	WorkID               uint64
	OperatorID           uint64
	CommissionID         *uint64
	CommissionCode       *string
	MachineID            *uint64
	MachineName          *string
}

// IntervalReportRow is a report row for the interval view. Only
// commission-typed reports appear here.
type IntervalReportRow struct {
	ReportID              uint64
	Date                  time.Time
	CreatedAt             time.Time
	InterventionDuration  string
	InterventionType      string
	InterventionLocation  string
	Description           string
	Supervisor            string
	Notes                 string
	TripKms               string
	Cost                  string
	WorkType              models.WorkKind
	WorkID                uint64
	OperatorID            uint64
	CommissionCode        string
	CommissionDescription string
	ClientName            string
	OperatorFirstName     string
	OperatorLastName      string
}

// ListReports returns every report joined to its polymorphic target, newest
// first. The owning client is resolved either directly through the
// commission or transitively through machine and plant; a report whose
// client cannot be resolved that way is excluded by the inner join.
func (s *Store) ListReports(ctx context.Context, operatorID *uint64) ([]ReportRow, error) {
	q := s.db.WithContext(ctx).
		Table("reports").
		Select(reportColumns + `,
			commissions.id AS commission_id, commissions.code AS commission_code,
			machines.id AS machine_id, machines.name AS machine_name,
			users.first_name AS operator_first_name, users.last_name AS operator_last_name,
			clients.id AS client_id, clients.name AS client_name`).
		Joins("LEFT JOIN commissions ON reports.work_type = ? AND reports.work_id = commissions.id", models.WorkKindCommission).
		Joins("LEFT JOIN machines ON reports.work_type = ? AND reports.work_id = machines.id", models.WorkKindMachine).
		Joins("JOIN users ON reports.operator_id = users.id").
		Joins("LEFT JOIN plants ON reports.work_type = ? AND machines.plant_id = plants.id", models.WorkKindMachine).
		Joins("JOIN clients ON commissions.client_id = clients.id OR (plants.client_id = clients.id AND reports.work_type = ?)", models.WorkKindMachine)

	if operatorID != nil {
		q = q.Where("reports.operator_id = ?", *operatorID)
	}

	var rows []ReportRow
	if errScan := q.Order("reports.date DESC").Scan(&rows).Error; errScan != nil {
		return nil, fmt.Errorf("list reports: %w", errScan)
	}
	return rows, nil
}

// GetReport returns a single report through the same polymorphic join as
// ListReports, enriched with commission and plant names for detail views.
func (s *Store) GetReport(ctx context.Context, reportID uint64) (*ReportDetail, error) {
	var rows []ReportDetail
	errScan := s.db.WithContext(ctx).
		Table("reports").
		Select(reportColumns + `,
			commissions.id AS commission_id, commissions.code AS commission_code,
			commissions.description AS commission_description,
			machines.id AS machine_id, machines.name AS machine_name,
			users.first_name AS operator_first_name, users.last_name AS operator_last_name,
			clients.id AS client_id, clients.name AS client_name,
			plants.id AS plant_id, plants.name AS plant_name`).
		Joins("LEFT JOIN commissions ON reports.work_type = ? AND reports.work_id = commissions.id", models.WorkKindCommission).
		Joins("LEFT JOIN machines ON reports.work_type = ? AND reports.work_id = machines.id", models.WorkKindMachine).
		Joins("JOIN users ON reports.operator_id = users.id").
		Joins("LEFT JOIN plants ON machines.plant_id = plants.id").
		Joins("JOIN clients ON plants.client_id = clients.id OR commissions.client_id = clients.id").
		Where("reports.id = ?", reportID).
		Limit(1).
		Scan(&rows).Error
	if errScan != nil {
		return nil, fmt.Errorf("get report: %w", errScan)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: report %d", ErrNotFound, reportID)
	}
	return &rows[0], nil
}

// ListMonths returns the distinct "MM/YYYY" labels present among report
// dates, optionally filtered by operator and work reference. The result is
// sorted on the string form, so "01/2024" sorts before "02/2023" even though
// it is chronologically later; the month selector UI depends on this exact
// ordering.
func (s *Store) ListMonths(ctx context.Context, operatorID, workID *uint64) ([]string, error) {
	q := s.db.WithContext(ctx).Model(&models.Report{})
	if operatorID != nil {
		q = q.Where("operator_id = ?", *operatorID)
	}
	if workID != nil {
		q = q.Where("work_id = ?", *workID)
	}

	var dates []time.Time
	if errPluck := q.Group("date").Order("date").Pluck("date", &dates).Error; errPluck != nil {
		return nil, fmt.Errorf("list months: %w", errPluck)
	}

	seen := make(map[string]struct{}, len(dates))
	months := make([]string, 0, len(dates))
	for _, d := range dates {
		label := d.Format(MonthFormat)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		months = append(months, label)
	}
	sort.Strings(months)
	return months, nil
}

// ListReportsInMonth returns the reports whose date falls within the
// calendar month given as "MM/YYYY". This view joins the polymorphic target
// labels only; it deliberately skips the client and plant enrichment that
// ListReports performs.
func (s *Store) ListReportsInMonth(ctx context.Context, month string, operatorID *uint64) ([]MonthReportRow, error) {
	start, errParse := time.Parse(MonthFormat, month)
	if errParse != nil {
		return nil, fmt.Errorf("%w: month %q, want MM/YYYY", ErrInvalidDate, month)
	}
	end := start.AddDate(0, 1, 0)

	q := s.db.WithContext(ctx).
		Table("reports").
		Select(reportColumns + `,
			commissions.id AS commission_id, commissions.code AS commission_code,
			machines.id AS machine_id, machines.name AS machine_name`).
		Joins("LEFT JOIN commissions ON reports.work_type = ? AND reports.work_id = commissions.id", models.WorkKindCommission).
		Joins("LEFT JOIN machines ON reports.work_type = ? AND reports.work_id = machines.id", models.WorkKindMachine).
		Where("reports.date >= ? AND reports.date < ?", start, end)

	if operatorID != nil {
		q = q.Where("reports.operator_id = ?", *operatorID)
	}

	var rows []MonthReportRow
	if errScan := q.Order("reports.date").Scan(&rows).Error; errScan != nil {
		return nil, fmt.Errorf("list reports in month: %w", errScan)
	}
	return rows, nil
}

// ListReportsInInterval returns commission-typed reports within the given
// date range. Bounds use the "YYYY-MM-DD" form and are inclusive; an empty
// string leaves that side of the range open. Nil filters mean "all".
// Machine-typed reports never appear in this query family.
func (s *Store) ListReportsInInterval(ctx context.Context, startDate, endDate string, workID, operatorID *uint64) ([]IntervalReportRow, error) {
	q := s.db.WithContext(ctx).
		Table("reports").
		Select(reportColumns + `,
			commissions.code AS commission_code, commissions.description AS commission_description,
			clients.name AS client_name,
			users.first_name AS operator_first_name, users.last_name AS operator_last_name`).
		Joins("JOIN commissions ON reports.work_type = ? AND reports.work_id = commissions.id", models.WorkKindCommission).
		Joins("JOIN clients ON commissions.client_id = clients.id").
		Joins("JOIN users ON reports.operator_id = users.id")

	if workID != nil {
		q = q.Where("reports.work_id = ?", *workID)
	}
	if operatorID != nil {
		q = q.Where("reports.operator_id = ?", *operatorID)
	}

	if startDate != "" {
		start, errParse := time.Parse(DateFormat, startDate)
		if errParse != nil {
			return nil, fmt.Errorf("%w: start date %q, want YYYY-MM-DD", ErrInvalidDate, startDate)
		}
		q = q.Where("reports.date >= ?", start)
	}
	if endDate != "" {
		end, errParse := time.Parse(DateFormat, endDate)
		if errParse != nil {
			return nil, fmt.Errorf("%w: end date %q, want YYYY-MM-DD", ErrInvalidDate, endDate)
		}
		q = q.Where("reports.date <= ?", end)
	}

	var rows []IntervalReportRow
	if errScan := q.Order("reports.date").Scan(&rows).Error; errScan != nil {
		return nil, fmt.Errorf("list reports in interval: %w", errScan)
	}
	return rows, nil
}

// ReportParams carries the mutable business fields of a report.
type ReportParams struct {
	Date                 time.Time
	InterventionDuration string
	InterventionType     string
	InterventionLocation string
	Description          string
	Supervisor           string
	Notes                string
	TripKms              string
	Cost                 string
	Work                 WorkRef
}

// CreateReport inserts a new report filed by the given operator. Empty
// numeric strings are normalized to "0.0" before persisting.
func (s *Store) CreateReport(ctx context.Context, p ReportParams, operatorID uint64) (*models.Report, error) {
	if !p.Work.Kind.Valid() {
		return nil, fmt.Errorf("create report: invalid work type %q", p.Work.Kind)
	}

	report := models.Report{
		Date:                 p.Date,
		InterventionDuration: p.InterventionDuration,
		InterventionType:     p.InterventionType,
		InterventionLocation: p.InterventionLocation,
		Description:          p.Description,
		Supervisor:           p.Supervisor,
		Notes:                p.Notes,
		TripKms:              normalizeNumeric(p.TripKms),
		Cost:                 normalizeNumeric(p.Cost),
		WorkType:             p.Work.Kind,
		WorkID:               p.Work.ID,
		OperatorID:           operatorID,
		CreatedAt:            time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&report).Error; errCreate != nil {
		return nil, fmt.Errorf("create report: %w", errCreate)
	}
	return &report, nil
}

// EditReport overwrites the mutable business fields of an existing report.
// The report is reassigned to the acting user regardless of who filed it.
func (s *Store) EditReport(ctx context.Context, reportID uint64, p ReportParams, actingUserID uint64) (*models.Report, error) {
	if !p.Work.Kind.Valid() {
		return nil, fmt.Errorf("edit report: invalid work type %q", p.Work.Kind)
	}

	var report models.Report
	if errFind := s.db.WithContext(ctx).First(&report, reportID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: report %d", ErrNotFound, reportID)
		}
		return nil, fmt.Errorf("load report: %w", errFind)
	}

	report.Date = p.Date
	report.InterventionDuration = p.InterventionDuration
	report.InterventionType = p.InterventionType
	report.InterventionLocation = p.InterventionLocation
	report.Description = p.Description
	report.Supervisor = p.Supervisor
	report.Notes = p.Notes
	report.TripKms = p.TripKms
	report.Cost = p.Cost
	report.WorkType = p.Work.Kind
	report.WorkID = p.Work.ID
	report.OperatorID = actingUserID

	if errSave := s.db.WithContext(ctx).Save(&report).Error; errSave != nil {
		return nil, fmt.Errorf("save report: %w", errSave)
	}
	return &report, nil
}

// DeleteReport removes a report. Only the operator who owns the report may
// delete it.
func (s *Store) DeleteReport(ctx context.Context, reportID, actingUserID uint64) error {
	var report models.Report
	if errFind := s.db.WithContext(ctx).First(&report, reportID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: report %d", ErrNotFound, reportID)
		}
		return fmt.Errorf("load report: %w", errFind)
	}
	if report.OperatorID != actingUserID {
		return fmt.Errorf("%w: report %d belongs to another operator", ErrForbidden, reportID)
	}
	if errDelete := s.db.WithContext(ctx).Delete(&report).Error; errDelete != nil {
		return fmt.Errorf("delete report: %w", errDelete)
	}
	return nil
}

// normalizeNumeric maps empty numeric strings to "0.0".
func normalizeNumeric(v string) string {
	if v == "" {
		return "0.0"
	}
	return v
}
