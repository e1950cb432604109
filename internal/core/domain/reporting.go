package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopClients is the number of clients ranked when no limit is given.
const DefaultTopClients = 10

// latestContractsShown is how many recent contracts ServiceContractMetrics lists.
const latestContractsShown = 5

var hundred = decimal.NewFromInt(100)

// GroupTotal is a count and value sum for one group key.
type GroupTotal struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type StageTotal struct {
	Stage string `json:"stage"`
	GroupTotal
}

type TeamTotal struct {
	Team string `json:"team"`
	GroupTotal
}

// DashboardMetrics summarises the sales funnel.
type DashboardMetrics struct {
	TotalOpportunities int             `json:"totalOpportunities"`
	TotalValue         decimal.Decimal `json:"totalValue"`
	ClosedValue        decimal.Decimal `json:"closedValue"`
	WonValue           decimal.Decimal `json:"wonValue"`
	HotValue           decimal.Decimal `json:"hotValue"`
	LostValue          decimal.Decimal `json:"lostValue"`
	ByStage            []StageTotal    `json:"byStage"`
	ByTeam             []TeamTotal     `json:"byTeam"`
}

type TeamTargetProgress struct {
	Team       string          `json:"team"`
	Target     decimal.Decimal `json:"target"`
	Actual     decimal.Decimal `json:"actual"`
	Percentage int64           `json:"percentage"`
}

type FunnelConversion struct {
	Stage      Stage           `json:"stage"`
	Count      int             `json:"count"`
	Value      decimal.Decimal `json:"value"`
	Percentage int64           `json:"percentage"`
}

type MonthlyTrend struct {
	Month  string          `json:"month"`
	Total  decimal.Decimal `json:"total"`
	Closed decimal.Decimal `json:"closed"`
}

type ClientValue struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type ContractBrief struct {
	ID          string           `json:"id"`
	ClientName  string           `json:"clientName"`
	Stage       Stage            `json:"stage"`
	Price       *decimal.Decimal `json:"price"`
	CreatedDate *Date            `json:"createdDate"`
	CloseDate   *Date            `json:"closeDate"`
}

type ContractStageCounts struct {
	Closed int `json:"Closed"`
	Hot    int `json:"Hot"`
	Warm   int `json:"Warm"`
}

type ServiceContractMetrics struct {
	Total           decimal.Decimal     `json:"total"`
	Closed          decimal.Decimal     `json:"closed"`
	Yearly          decimal.Decimal     `json:"yearly"`
	Count           int                 `json:"count"`
	ClosedCount     int                 `json:"closedCount"`
	LatestContracts []ContractBrief     `json:"latestContracts"`
	EarliestDate    *Date               `json:"earliestDate"`
	LatestDate      *Date               `json:"latestDate"`
	ByStage         ContractStageCounts `json:"byStage"`
}

type ExpenseSummary struct {
	TotalAmount decimal.Decimal            `json:"totalAmount"`
	ByCategory  map[string]decimal.Decimal `json:"byCategory"`
	Count       int                        `json:"count"`
}

type StatusAmount struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type SalarySummary struct {
	TotalBaseSalary decimal.Decimal         `json:"totalBaseSalary"`
	TotalBonus      decimal.Decimal         `json:"totalBonus"`
	TotalDeductions decimal.Decimal         `json:"totalDeductions"`
	TotalNetSalary  decimal.Decimal         `json:"totalNetSalary"`
	ByStatus        map[string]StatusAmount `json:"byStatus"`
	Count           int                     `json:"count"`
}

type CategoryStock struct {
	Count    int             `json:"count"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

type StockSummary struct {
	TotalItems    int                      `json:"totalItems"`
	TotalQuantity int                      `json:"totalQuantity"`
	TotalValue    decimal.Decimal          `json:"totalValue"`
	LowStockItems int                      `json:"lowStockItems"`
	ByCategory    map[string]CategoryStock `json:"byCategory"`
}

// Percent returns round(part/whole*100), or 0 when whole is not positive.
func Percent(part, whole decimal.Decimal) int64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(0).IntPart()
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// SummarizeFunnel reduces opportunities into dashboard metrics. Groups keep
// the order in which their key first appears.
func SummarizeFunnel(rows []Opportunity) DashboardMetrics {
	m := DashboardMetrics{
		TotalOpportunities: len(rows),
		ByStage:            []StageTotal{},
		ByTeam:             []TeamTotal{},
	}
	stageIdx := map[string]int{}
	teamIdx := map[string]int{}
	for _, row := range rows {
		price := row.PriceOrZero()
		m.TotalValue = m.TotalValue.Add(price)
		switch row.Stage {
		case StageClosed:
			m.ClosedValue = m.ClosedValue.Add(price)
		case StageWon:
			m.WonValue = m.WonValue.Add(price)
		case StageHot:
			m.HotValue = m.HotValue.Add(price)
		case StageLost:
			m.LostValue = m.LostValue.Add(price)
		}

		stage := string(row.Stage)
		i, ok := stageIdx[stage]
		if !ok {
			i = len(m.ByStage)
			stageIdx[stage] = i
			m.ByStage = append(m.ByStage, StageTotal{Stage: stage})
		}
		m.ByStage[i].Count++
		m.ByStage[i].Value = m.ByStage[i].Value.Add(price)

		team := teamKey(row.TeamMember)
		j, ok := teamIdx[team]
		if !ok {
			j = len(m.ByTeam)
			teamIdx[team] = j
			m.ByTeam = append(m.ByTeam, TeamTotal{Team: team})
		}
		m.ByTeam[j].Count++
		m.ByTeam[j].Value = m.ByTeam[j].Value.Add(price)
	}
	return m
}

// TeamProgress compares configured team targets with the value of Closed and
// Won opportunities. Only teams with a non-zero target are reported.
func TeamProgress(targets []TeamTargetSetting, rows []Opportunity) []TeamTargetProgress {
	actual := map[string]decimal.Decimal{}
	for _, row := range rows {
		if row.Stage != StageClosed && row.Stage != StageWon {
			continue
		}
		team := teamKey(row.TeamMember)
		actual[team] = actual[team].Add(row.PriceOrZero())
	}
	out := []TeamTargetProgress{}
	for _, t := range targets {
		if t.Target.IsZero() {
			continue
		}
		out = append(out, TeamTargetProgress{
			Team:       t.Team,
			Target:     t.Target,
			Actual:     actual[t.Team],
			Percentage: Percent(actual[t.Team], t.Target),
		})
	}
	return out
}

// FunnelConversions reports every pipeline stage in board order with its share of all rows.
func FunnelConversions(rows []Opportunity) []FunnelConversion {
	totals := map[Stage]*FunnelConversion{}
	out := make([]FunnelConversion, len(PipelineStages))
	for i, s := range PipelineStages {
		out[i] = FunnelConversion{Stage: s}
		totals[s] = &out[i]
	}
	for _, row := range rows {
		if c, ok := totals[row.Stage]; ok {
			c.Count++
			c.Value = c.Value.Add(row.PriceOrZero())
		}
	}
	total := decimal.NewFromInt(int64(len(rows)))
	for i := range out {
		out[i].Percentage = Percent(decimal.NewFromInt(int64(out[i].Count)), total)
	}
	return out
}

// MonthlyTrends buckets opportunities by the year-month of their created date.
// Rows without a created date are skipped; months are returned in ascending order.
func MonthlyTrends(rows []Opportunity) []MonthlyTrend {
	byMonth := map[string]*MonthlyTrend{}
	for _, row := range rows {
		if row.CreatedDate == nil || row.CreatedDate.IsZero() {
			continue
		}
		key := row.CreatedDate.YearMonth()
		t, ok := byMonth[key]
		if !ok {
			t = &MonthlyTrend{Month: key}
			byMonth[key] = t
		}
		price := row.PriceOrZero()
		t.Total = t.Total.Add(price)
		if row.Stage == StageClosed {
			t.Closed = t.Closed.Add(price)
		}
	}
	out := make([]MonthlyTrend, 0, len(byMonth))
	for _, t := range byMonth {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopClients ranks clients by summed price, highest first. Ties keep the
// order in which the client first appears in rows.
func TopClients(rows []Opportunity, limit int) []ClientValue {
	if limit <= 0 {
		limit = DefaultTopClients
	}
	idx := map[string]int{}
	out := []ClientValue{}
	for _, row := range rows {
		i, ok := idx[row.ClientName]
		if !ok {
			i = len(out)
			idx[row.ClientName] = i
			out = append(out, ClientValue{Name: row.ClientName})
		}
		out[i].Value = out[i].Value.Add(row.PriceOrZero())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SummarizeContracts reduces service contracts. rows must be ordered newest first.
func SummarizeContracts(rows []ServiceContract) ServiceContractMetrics {
	m := ServiceContractMetrics{
		Count:           len(rows),
		LatestContracts: []ContractBrief{},
	}
	for i, row := range rows {
		price := row.PriceOrZero()
		m.Total = m.Total.Add(price)
		m.Yearly = m.Yearly.Add(orZero(row.YearlyPayment))
		switch row.Stage {
		case StageClosed:
			m.Closed = m.Closed.Add(price)
			m.ClosedCount++
			m.ByStage.Closed++
		case StageHot:
			m.ByStage.Hot++
		case StageWarm:
			m.ByStage.Warm++
		}
		if i < latestContractsShown {
			m.LatestContracts = append(m.LatestContracts, ContractBrief{
				ID:          row.ID,
				ClientName:  row.ClientName,
				Stage:       row.Stage,
				Price:       row.Price,
				CreatedDate: row.CreatedDate,
				CloseDate:   row.CloseDate,
			})
		}
		if row.CreatedDate == nil || row.CreatedDate.IsZero() {
			continue
		}
		d := *row.CreatedDate
		if m.EarliestDate == nil || d.Before(m.EarliestDate.Time) {
			m.EarliestDate = &d
		}
		if m.LatestDate == nil || d.After(m.LatestDate.Time) {
			m.LatestDate = &d
		}
	}
	return m
}

func SummarizeExpenses(rows []Expense) ExpenseSummary {
	s := ExpenseSummary{ByCategory: map[string]decimal.Decimal{}, Count: len(rows)}
	for _, row := range rows {
		s.TotalAmount = s.TotalAmount.Add(row.Amount)
		cat := string(row.Category)
		if cat == "" {
			cat = string(ExpenseOther)
		}
		s.ByCategory[cat] = s.ByCategory[cat].Add(row.Amount)
	}
	return s
}

// SummarizeSalaries totals payroll; byStatus amounts are net salaries.
func SummarizeSalaries(rows []Salary) SalarySummary {
	s := SalarySummary{ByStatus: map[string]StatusAmount{}, Count: len(rows)}
	for _, row := range rows {
		s.TotalBaseSalary = s.TotalBaseSalary.Add(row.BaseSalary)
		s.TotalBonus = s.TotalBonus.Add(orZero(row.Bonus))
		s.TotalDeductions = s.TotalDeductions.Add(orZero(row.Deductions))
		s.TotalNetSalary = s.TotalNetSalary.Add(row.NetSalary)

		status := string(row.PaymentStatus)
		if status == "" {
			status = string(PaymentPending)
		}
		agg := s.ByStatus[status]
		agg.Count++
		agg.Amount = agg.Amount.Add(row.NetSalary)
		s.ByStatus[status] = agg
	}
	return s
}

func SummarizeStock(rows []StockItem) StockSummary {
	s := StockSummary{TotalItems: len(rows), ByCategory: map[string]CategoryStock{}}
	for _, row := range rows {
		value := orZero(row.TotalValue)
		s.TotalQuantity += row.Quantity
		s.TotalValue = s.TotalValue.Add(value)
		if row.IsLowStock() {
			s.LowStockItems++
		}
		cat := string(StockOther)
		if row.Category != nil && *row.Category != "" {
			cat = string(*row.Category)
		}
		agg := s.ByCategory[cat]
		agg.Count++
		agg.Quantity += row.Quantity
		agg.Value = agg.Value.Add(value)
		s.ByCategory[cat] = agg
	}
	return s
}

// DashboardOverview is every dashboard view computed in one request.
type DashboardOverview struct {
	Metrics          DashboardMetrics       `json:"metrics"`
	TeamTargets      []TeamTargetProgress   `json:"teamTargets"`
	Funnel           []FunnelConversion     `json:"funnel"`
	MonthlyTrends    []MonthlyTrend         `json:"monthlyTrends"`
	TopClients       []ClientValue          `json:"topClients"`
	ServiceContracts ServiceContractMetrics `json:"serviceContracts"`
}
