package serializers

import (
	"schmebulock/server/internal/measurement"
	"schmebulock/server/internal/money"
	"schmebulock/server/internal/utils"
)

// FieldInfo описывает поле сериализатора для интроспекции
type FieldInfo struct {
	Type        string         `json:"type"`
	Required    bool           `json:"required"`
	ReadOnly    bool           `json:"read_only"`
	Label       string         `json:"label"`
	UnitChoices []utils.Choice `json:"unit_choices,omitempty"`
	Choices     []utils.Choice `json:"choices,omitempty"`
}

// Названия канонических единиц в списках выбора
const (
	volumeFirstAlias = "cubic meter"
	weightFirstAlias = "gram"
)

// EnrichFieldInfo дополняет описание поля допустимыми наборами значений:
// для volume/weight — единицы измерения с канонической на первом месте,
// для currency — полный набор валют в порядке перечисления.
// Остальные поля возвращаются без изменений.
func EnrichFieldInfo(fieldName string, info FieldInfo) FieldInfo {
	switch fieldName {
	case "volume":
		info.UnitChoices = utils.GetChoices(
			measurement.Aliases(measurement.KindVolume), volumeFirstAlias)
	case "weight":
		info.UnitChoices = utils.GetChoices(
			measurement.Aliases(measurement.KindWeight), weightFirstAlias)
	case "currency":
		info.Choices = money.Choices()
	}
	return info
}

// FieldSet — описание полей сериализатора; порядок полей отдается
// отдельным списком, так как JSON-объект порядок не сохраняет
type FieldSet struct {
	Names  []string             `json:"field_order"`
	Fields map[string]FieldInfo `json:"fields"`
}

func auditFieldSet() ([]string, map[string]FieldInfo) {
	names := []string{"id", "created_by", "modified_by", "created", "modified"}
	fields := map[string]FieldInfo{
		"id":          {Type: "integer", ReadOnly: true, Label: "ID"},
		"created_by":  {Type: "integer", ReadOnly: true, Label: "Created by"},
		"modified_by": {Type: "integer", ReadOnly: true, Label: "Modified by"},
		"created":     {Type: "datetime", ReadOnly: true, Label: "Created"},
		"modified":    {Type: "datetime", ReadOnly: true, Label: "Modified"},
	}
	return names, fields
}

// buildFieldSet собирает описание полей сущности: сперва поля аудита,
// затем собственные, каждое пропускается через EnrichFieldInfo
func buildFieldSet(names []string, own map[string]FieldInfo) FieldSet {
	allNames, fields := auditFieldSet()
	allNames = append(allNames, names...)
	for name, info := range own {
		fields[name] = info
	}
	for name, info := range fields {
		fields[name] = EnrichFieldInfo(name, info)
	}
	return FieldSet{Names: allNames, Fields: fields}
}

// BrandMetadata описывает поля сериализатора брендов
func BrandMetadata() FieldSet {
	return buildFieldSet(
		[]string{"name"},
		map[string]FieldInfo{
			"name": {Type: "string", Required: true, Label: "Name"},
		})
}

// StoreMetadata описывает поля сериализатора магазинов
func StoreMetadata() FieldSet {
	return buildFieldSet(
		[]string{"name"},
		map[string]FieldInfo{
			"name": {Type: "string", Required: true, Label: "Name"},
		})
}

// OrderMetadata описывает поля сериализатора заказов
func OrderMetadata() FieldSet {
	return buildFieldSet(
		[]string{"date", "store"},
		map[string]FieldInfo{
			"date":  {Type: "date", Required: true, Label: "Date"},
			"store": {Type: "integer", Required: true, Label: "Store"},
		})
}

// ItemMetadata описывает поля сериализатора товаров
func ItemMetadata() FieldSet {
	return buildFieldSet(
		[]string{"name", "unit", "volume", "weight", "brand"},
		map[string]FieldInfo{
			"name":   {Type: "string", Required: true, Label: "Name"},
			"unit":   {Type: "string", Required: true, Label: "Unit"},
			"volume": {Type: "float", Label: "Volume"},
			"weight": {Type: "float", Label: "Weight"},
			"brand":  {Type: "integer", Required: true, Label: "Brand"},
		})
}

// PurchaseMetadata описывает поля сериализатора покупок
func PurchaseMetadata() FieldSet {
	return buildFieldSet(
		[]string{"price", "currency", "item", "order", "location"},
		map[string]FieldInfo{
			"price":    {Type: "decimal", Required: true, Label: "Price"},
			"currency": {Type: "string", Label: "Currency"},
			"item":     {Type: "integer", Required: true, Label: "Item"},
			"order":    {Type: "integer", Label: "Order"},
			"location": {Type: "integer", Required: true, Label: "Location"},
		})
}

// LocationMetadata описывает поля сериализатора локаций
func LocationMetadata() FieldSet {
	return buildFieldSet(
		[]string{"address", "district"},
		map[string]FieldInfo{
			"address":  {Type: "string", Required: true, Label: "Address"},
			"district": {Type: "integer", Required: true, Label: "District"},
		})
}
