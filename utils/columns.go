package utils

import (
	"fmt"
	"reflect"
)

// ColumnList builds the list of column names to select for a db model
// struct, from its `db` tags. Embedded fields are skipped: a row struct can
// embed the base model and list only its own joined columns.
func ColumnList[DbModel any](prefixes ...string) []string {
	var dbModel DbModel
	modelType := reflect.TypeOf(dbModel)
	if modelType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ColumnList: %T is not a struct", dbModel))
	}

	columns := make([]string, 0, modelType.NumField())
	for i := range modelType.NumField() {
		field := modelType.Field(i)
		if field.Anonymous {
			continue
		}
		tag, ok := field.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		column := fmt.Sprintf(`"%s"`, tag)
		for _, prefix := range prefixes {
			column = prefix + "." + column
		}
		columns = append(columns, column)
	}
	return columns
}
