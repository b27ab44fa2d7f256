package grammar

func newSQLTable() *Table {
	t := &Table{
		Lang:          SQL,
		CaseSensitive: false,
		keywords: wordSet(false,
			// DML
			"SELECT", "INSERT", "UPDATE", "DELETE", "WITH",
			"FROM", "WHERE", "JOIN", "INNER", "LEFT", "RIGHT", "FULL",
			"OUTER", "ON", "USING", "GROUP", "BY", "HAVING", "ORDER",
			"ASC", "DESC", "LIMIT", "OFFSET", "UNION", "INTERSECT",
			"EXCEPT", "ALL", "DISTINCT", "INTO", "VALUES", "SET",
			// DDL
			"CREATE", "ALTER", "DROP", "TRUNCATE", "RENAME",
			"TABLE", "VIEW", "INDEX", "SEQUENCE", "SCHEMA", "DATABASE",
			"CONSTRAINT", "PRIMARY", "KEY", "FOREIGN", "REFERENCES",
			"UNIQUE", "CHECK", "DEFAULT", "AUTO_INCREMENT",
			"ADD", "MODIFY", "CHANGE", "COLUMN",
			// DCL / TCL
			"GRANT", "REVOKE", "DENY",
			"COMMIT", "ROLLBACK", "SAVEPOINT", "BEGIN", "START",
			"TRANSACTION",
			// Types
			"INT", "INTEGER", "BIGINT", "SMALLINT", "TINYINT",
			"DECIMAL", "NUMERIC", "FLOAT", "DOUBLE", "REAL",
			"CHAR", "VARCHAR", "TEXT", "NCHAR", "NVARCHAR",
			"DATE", "TIME", "DATETIME", "TIMESTAMP", "YEAR",
			"BOOLEAN", "BOOL", "BIT", "BINARY", "VARBINARY",
			"BLOB", "CLOB", "JSON", "XML",
			// Logical
			"AND", "OR", "NOT", "IN", "EXISTS", "BETWEEN", "LIKE",
			"ILIKE", "IS",
			// Window
			"OVER", "PARTITION", "ROWS", "RANGE", "UNBOUNDED",
			"PRECEDING", "FOLLOWING", "CURRENT", "ROW",
			// Conditionals
			"CASE", "WHEN", "THEN", "ELSE", "END", "IF", "ELSEIF",
			// Misc
			"AS", "CAST", "CONVERT", "EXTRACT",
			"EXPLAIN", "DESCRIBE", "SHOW", "USE", "CALL", "PROCEDURE",
			"FUNCTION", "TRIGGER", "CURSOR", "DECLARE", "OPEN", "FETCH",
			"CLOSE", "WHILE", "LOOP", "FOR", "REPEAT", "UNTIL", "LEAVE",
			"ITERATE", "CONTINUE", "EXIT",
		),
		builtins: wordSet(false,
			// Aggregates
			"COUNT", "SUM", "AVG", "MIN", "MAX", "STDDEV", "VARIANCE",
			// String functions
			"CONCAT", "LENGTH", "UPPER", "LOWER", "LTRIM", "RTRIM",
			"TRIM", "SUBSTRING", "SUBSTR", "REPLACE", "REVERSE",
			"CHARINDEX", "POSITION", "LOCATE", "INSTR", "LPAD", "RPAD",
			// Date functions
			"NOW", "CURDATE", "CURTIME", "SYSDATE", "GETDATE",
			"DATEADD", "DATEDIFF", "DATEPART", "MONTH", "DAY",
			"HOUR", "MINUTE", "SECOND", "DAYOFWEEK", "DAYOFYEAR",
			"WEEK", "QUARTER", "LAST_DAY", "DATE_FORMAT", "STR_TO_DATE",
			// Math functions
			"ABS", "CEIL", "CEILING", "FLOOR", "ROUND", "TRUNC",
			"MOD", "POWER", "POW", "SQRT", "EXP", "LOG", "LOG10", "LN",
			"SIN", "COS", "TAN", "ASIN", "ACOS", "ATAN", "ATAN2",
			"DEGREES", "RADIANS", "PI", "RAND", "RANDOM", "SIGN",
			// Conversion / conditional
			"TO_CHAR", "TO_DATE", "TO_NUMBER", "FORMAT",
			"COALESCE", "ISNULL", "NULLIF", "IIF", "CHOOSE",
			"GREATEST", "LEAST",
			// Window functions
			"ROW_NUMBER", "RANK", "DENSE_RANK", "NTILE", "PERCENT_RANK",
			"CUME_DIST", "LAG", "LEAD", "FIRST_VALUE", "LAST_VALUE",
			"NTH_VALUE",
		),
		booleans: wordSet(false, "TRUE", "FALSE"),
		nones:    wordSet(false, "NULL"),
		opWords:  map[string]struct{}{},

		LineComments: []string{"--"},
		BlockOpen:    "/*",
		BlockClose:   "*/",
		BlockNest:    false,

		// Single quotes delimit strings; double quotes and backticks
		// delimit quoted names, lexed as string literals too.
		Quotes: []byte{'\'', '"', '`'},

		// @ starts session variables, lexed as identifiers.
		identStart: func(b byte) bool { return isASCIILetter(b) || b == '_' || b == '@' || b == '#' },
		identPart: func(b byte) bool {
			return isASCIILetter(b) || isDigit(b) || b == '_' || b == '$'
		},
	}

	t.setOperators(
		"+", "-", "*", "/", "%",
		"=", "!=", "<>", "<", ">", "<=", ">=",
		"||", "&&", "!", "::",
		":=", "+=", "-=", "*=", "/=",
	)
	t.setDelimiters("()[]{},;.")

	return t
}
