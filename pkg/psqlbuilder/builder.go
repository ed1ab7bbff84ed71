package psqlbuilder

import sq "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами Postgres ($1, $2, ...)
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Select(columns ...string) sq.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) sq.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) sq.UpdateBuilder {
	return builder.Update(table)
}

func Delete(table string) sq.DeleteBuilder {
	return builder.Delete(table)
}
