package httpapi

import (
	"strconv"
	"strings"

	"github.com/couchcryptid/yield-table-service/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func layout(title string, body ...Node) Node {
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			TitleEl(Text(title)),
			StyleEl(Raw("body{font-family:sans-serif;margin:2rem}table{border-collapse:collapse}th,td{border:1px solid #999;padding:.3rem .6rem;text-align:right}th{background:#eee}td:first-child,th:first-child{text-align:left}")),
		),
		Body(
			H1(Text(title)),
			Group(body),
		),
	)
}

func metaListPage(metas []domain.YieldTableMeta) Node {
	rows := make([]Node, 0, len(metas))
	for _, m := range metas {
		rows = append(rows, Tr(
			Td(A(Href("/v1/yield-tables/"+strconv.Itoa(m.ID)), Text(strconv.Itoa(m.ID)))),
			Td(Text(m.Title)),
			Td(Text(strings.Join(m.CountryCodes, ", "))),
			Td(Text(m.Type)),
			Td(Text(m.Source)),
			Td(Text(fmtOptFloat(m.YieldClassStep))),
			Td(Text(fmtOptInt(m.AgeStep))),
			Td(Text(string(m.TreeType))),
		))
	}
	return layout("Yield Tables",
		Table(
			THead(Tr(Th(Text("ID")), Th(Text("Title")), Th(Text("Countries")), Th(Text("Type")), Th(Text("Source")), Th(Text("Class step")), Th(Text("Age step")), Th(Text("Tree type")))),
			TBody(Group(rows)),
		),
	)
}

func metaPage(m domain.YieldTableMeta) Node {
	return layout(m.Title,
		Dl(
			Dt(Text("ID")), Dd(Text(strconv.Itoa(m.ID))),
			Dt(Text("Countries")), Dd(Text(strings.Join(m.CountryCodes, ", "))),
			Dt(Text("Type")), Dd(Text(m.Type)),
			Dt(Text("Source")), Dd(Text(m.Source)),
			Dt(Text("Link")), Dd(Text(m.Link)),
			Dt(Text("Yield class step")), Dd(Text(fmtOptFloat(m.YieldClassStep))),
			Dt(Text("Age step")), Dd(Text(fmtOptInt(m.AgeStep))),
			Dt(Text("Tree type")), Dd(Text(string(m.TreeType))),
			Dt(Text("Available columns")), Dd(Text(strings.Join(m.AvailableColumns, ", "))),
		),
	)
}

func tablePage(t domain.YieldTable) Node {
	sections := make([]Node, 0, 2*len(t.Data.YieldClasses))
	for _, yc := range t.Data.YieldClasses {
		sections = append(sections,
			H2(Text("Yield class "+yc.YieldClass.String())),
			rowsTable(yc.Rows),
		)
	}
	return layout(t.Title, Group(sections))
}

func classPage(tableID int, yc domain.YieldClass) Node {
	return layout(
		"Yield table "+strconv.Itoa(tableID)+", interpolated class "+yc.YieldClass.String(),
		rowsTable(yc.Rows),
	)
}

func errorPage(title, message string) Node {
	return layout(title, P(Text(message)))
}

func rowsTable(rows []domain.YieldClassRow) Node {
	trs := make([]Node, 0, len(rows))
	for _, row := range rows {
		trs = append(trs, Tr(
			Td(Text(strconv.Itoa(row.Age))),
			Td(Text(fmtOptFloat(row.DominantHeight))),
			Td(Text(fmtOptFloat(row.AverageHeight))),
			Td(Text(fmtOptFloat(row.DBH))),
			Td(Text(fmtOptFloat(row.Taper))),
			Td(Text(fmtOptFloat(row.TreesPerHa))),
			Td(Text(fmtOptFloat(row.BasalArea))),
			Td(Text(fmtOptFloat(row.VolumePerHa))),
			Td(Text(fmtOptFloat(row.AverageAnnualAgeIncrement))),
			Td(Text(fmtOptFloat(row.TotalGrowthPerformance))),
			Td(Text(fmtOptFloat(row.CurrentAnnualIncrement))),
			Td(Text(fmtOptFloat(row.MeanAnnualIncrement))),
		))
	}
	return Table(
		THead(Tr(
			Th(Text("Age")), Th(Text("Dom. height")), Th(Text("Avg. height")), Th(Text("DBH")),
			Th(Text("Taper")), Th(Text("Trees/ha")), Th(Text("Basal area")), Th(Text("Volume/ha")),
			Th(Text("Avg. annual age incr.")), Th(Text("Total growth perf.")), Th(Text("CAI")), Th(Text("MAI")),
		)),
		TBody(Group(trs)),
	)
}

func fmtOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtOptInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
