package database

import (
	"strings"
	"testing"
	"time"
)

func TestBuildTransactionListQueryNoFilters(t *testing.T) {
	query, args := buildTransactionListQuery(7, TransactionFilter{})

	if len(args) != 1 || args[0] != 7 {
		t.Errorf("без фильтров ожидается один аргумент user_id, получили %v", args)
	}
	if !strings.Contains(query, "WHERE user_id = $1") {
		t.Errorf("запрос должен фильтровать по user_id: %s", query)
	}
	if !strings.Contains(query, "ORDER BY transaction_date DESC, id DESC") {
		t.Errorf("запрос должен сортировать по дате по убыванию: %s", query)
	}
}

func TestBuildTransactionListQueryAllFilters(t *testing.T) {
	date := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	filter := TransactionFilter{
		Type:       "expense",
		CategoryID: 3,
		Date:       &date,
		Search:     "кофе",
	}

	query, args := buildTransactionListQuery(7, filter)

	if len(args) != 5 {
		t.Fatalf("ожидается 5 аргументов, получили %d: %v", len(args), args)
	}
	if args[1] != "expense" || args[2] != 3 || args[4] != "кофе" {
		t.Errorf("аргументы фильтра не совпадают: %v", args)
	}
	for _, clause := range []string{
		"AND type = $2",
		"AND category_id = $3",
		"AND transaction_date = $4",
		"AND notes ILIKE '%' || $5 || '%'",
	} {
		if !strings.Contains(query, clause) {
			t.Errorf("в запросе нет условия %q: %s", clause, query)
		}
	}
}

func TestBuildTransactionListQueryEscapesSearch(t *testing.T) {
	cases := []struct {
		search string
		want   string
	}{
		{"100%", `100\%`},
		{"чек_42", `чек\_42`},
		{`путь\до`, `путь\\до`},
		{"обед", "обед"},
	}

	for _, tc := range cases {
		_, args := buildTransactionListQuery(1, TransactionFilter{Search: tc.search})
		if len(args) != 2 {
			t.Fatalf("ожидается 2 аргумента для поиска %q, получили %d", tc.search, len(args))
		}
		if args[1] != tc.want {
			t.Errorf("метасимволы поиска %q не экранированы: получили %q, хотели %q", tc.search, args[1], tc.want)
		}
	}
}

func TestBuildTransactionListQueryPartialFilters(t *testing.T) {
	query, args := buildTransactionListQuery(1, TransactionFilter{Search: "обед"})

	if len(args) != 2 {
		t.Fatalf("ожидается 2 аргумента, получили %d", len(args))
	}
	if !strings.Contains(query, "AND notes ILIKE '%' || $2 || '%'") {
		t.Errorf("поиск по заметкам должен идти вторым аргументом: %s", query)
	}
	if strings.Contains(query, "AND type") || strings.Contains(query, "AND category_id") {
		t.Errorf("незаданные фильтры не должны попадать в запрос: %s", query)
	}
}
