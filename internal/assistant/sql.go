package assistant

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/samandr77/microservices/erp/internal/entity"
)

// ForbiddenSQLMessage is returned to the user when generated SQL would change data.
const ForbiddenSQLMessage = "Güvenlik: Sadece SELECT sorguları desteklenir"

// QueryableTables are the business tables generated SQL may read. Each one has a company scoped
// view of the same name in the assistant_scope schema.
var QueryableTables = []string{
	"activities",
	"checks",
	"customers",
	"deliveries",
	"employee_leaves",
	"employees",
	"events",
	"expenses",
	"grns",
	"incoming_invoices",
	"inventory_transactions",
	"opportunities",
	"orders",
	"payments",
	"products",
	"proposals",
	"purchase_invoices",
	"purchase_orders",
	"purchase_requests",
	"rfqs",
	"salary_records",
	"sales_invoice_items",
	"sales_invoices",
	"service_requests",
	"service_slips",
	"suppliers",
	"vehicle_documents",
	"vehicle_incidents",
	"vehicle_maintenance",
	"vehicles",
	"vendor_invoices",
	"work_orders",
}

var (
	reFenceOpen  = regexp.MustCompile("(?i)```sql\\n?")
	reFenceClose = regexp.MustCompile("```\\n?")
	reForbidden  = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|DROP|ALTER|CREATE|TRUNCATE|GRANT|REVOKE)\b`)
	reReadOnly   = regexp.MustCompile(`(?i)^\s*(SELECT|WITH)\b`)

	// Names that must not appear anywhere in the text, string literals included.
	reDenied = regexp.MustCompile(`(?i)\b(veriban_auth|nilvera_auth|assistant_messages|generated_reports|` +
		`information_schema|public|assistant_scope|pg_\w+|set_config|current_setting|\w+_to_xml\w*|` +
		`ts_stat|ts_rewrite|dblink\w*|lo_\w+)\b`)

	reLiteral = regexp.MustCompile(`'(?:[^']|'')*'`)
	reToken   = regexp.MustCompile(`"[^"]*"|[A-Za-z_][\w.$]*|\S`)
	reCTE     = regexp.MustCompile(`(?i)(?:\bWITH(?:\s+RECURSIVE)?|,)\s+"?([a-z_]\w*)"?\s*(?:\([^()]*\)\s*)?AS\s*(?:NOT\s+)?(?:MATERIALIZED\s*)?\(`)
)

// Words that end a FROM item or cannot be an alias.
var sqlKeywords = map[string]bool{
	"where": true, "group": true, "order": true, "limit": true, "join": true, "on": true,
	"left": true, "right": true, "inner": true, "full": true, "outer": true, "cross": true,
	"having": true, "union": true, "intersect": true, "except": true, "offset": true,
	"natural": true, "window": true, "using": true, "lateral": true, "only": true,
	"fetch": true, "for": true, "tablesample": true,
}

// Functions whose argument syntax uses FROM without naming a relation.
var fromFunctions = map[string]bool{"extract": true, "substring": true, "trim": true, "overlay": true, "position": true}

// CleanSQL strips markdown code fences the model sometimes wraps its answer in.
func CleanSQL(raw string) string {
	sql := strings.TrimSpace(raw)
	sql = reFenceOpen.ReplaceAllString(sql, "")
	sql = reFenceClose.ReplaceAllString(sql, "")

	return strings.TrimSpace(sql)
}

// GuardSQL accepts a single SELECT statement (optionally with a CTE) that reads only
// QueryableTables. A trailing semicolon is dropped.
func GuardSQL(sql string) (string, error) {
	sql = strings.TrimRight(strings.TrimSpace(sql), "; \n\t")

	switch {
	case sql == "":
		return "", fmt.Errorf("%w: empty query", entity.ErrForbiddenSQL)
	case reForbidden.MatchString(sql):
		return "", fmt.Errorf("%w: %s", entity.ErrForbiddenSQL, reForbidden.FindString(sql))
	case strings.Contains(sql, ";"):
		return "", fmt.Errorf("%w: multiple statements", entity.ErrForbiddenSQL)
	case !reReadOnly.MatchString(sql):
		return "", fmt.Errorf("%w: not a select", entity.ErrForbiddenSQL)
	case reDenied.MatchString(sql):
		return "", fmt.Errorf("%w: %s is not allowed", entity.ErrForbiddenSQL, reDenied.FindString(sql))
	}

	for _, table := range referencedTables(sql) {
		if !slices.Contains(QueryableTables, table) {
			return "", fmt.Errorf("%w: table %s is not allowed", entity.ErrForbiddenSQL, table)
		}
	}

	return sql, nil
}

// referencedTables lists the relations named after FROM and JOIN, CTE names excluded.
func referencedTables(sql string) []string {
	text := reLiteral.ReplaceAllString(sql, "''")

	ctes := map[string]bool{}
	for _, m := range reCTE.FindAllStringSubmatch(text, -1) {
		ctes[strings.ToLower(m[1])] = true
	}

	tokens := reToken.FindAllString(text, -1)
	for i := range tokens {
		tokens[i] = strings.ToLower(tokens[i])
	}

	var (
		tables []string
		// true for parentheses opened by a function in fromFunctions
		parens []bool
	)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok {
		case "(":
			parens = append(parens, i > 0 && fromFunctions[tokens[i-1]])
			continue
		case ")":
			if len(parens) > 0 {
				parens = parens[:len(parens)-1]
			}

			continue
		case "from", "join":
		default:
			continue
		}

		if tok == "from" && (len(parens) > 0 && parens[len(parens)-1] || i > 0 && tokens[i-1] == "distinct") {
			continue
		}

		for {
			i++
			for i < len(tokens) && (tokens[i] == "lateral" || tokens[i] == "only") {
				i++
			}

			if i >= len(tokens) || tokens[i] == "(" {
				i--
				break
			}

			name := strings.Trim(tokens[i], `"`)
			if !ctes[name] && !sqlKeywords[name] {
				tables = append(tables, name)
			}

			// optional alias
			if i+1 < len(tokens) && tokens[i+1] == "as" {
				i++
			}

			if i+1 < len(tokens) && !sqlKeywords[tokens[i+1]] && tokens[i+1] != "," && tokens[i+1] != ")" &&
				tokens[i+1] != "(" {
				i++
			}

			if i+1 >= len(tokens) || tokens[i+1] != "," {
				break
			}

			i++
		}
	}

	return tables
}
