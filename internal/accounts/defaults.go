package accounts

import "github.com/cleared-dev/ledgerlab/internal/model"

const (
	groupCurrentAssets    = "Activo Corriente"
	groupNonCurrentAssets = "Activo No Corriente"
	groupCurrentLiab      = "Pasivo Corriente"
	groupEquity           = "Patrimonio"
	groupOperatingExp     = "Gastos Operativos"
	groupPersonnelExp     = "Gastos de Personal"
	groupOtherExp         = "Otros Gastos"
	groupRevenue          = "Ingresos Ordinarios"
)

// DefaultChart returns the classroom chart of accounts. It covers every
// account referenced by the built-in scenarios.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "1011", Name: "Caja", Nature: model.NatureAsset, Group: groupCurrentAssets},
		{Code: "1041", Name: "Cuentas Corrientes Operativas", Nature: model.NatureAsset, Group: groupCurrentAssets},
		{Code: "1211", Name: "Clientes", Nature: model.NatureAsset, Group: groupCurrentAssets},
		{Code: "1212", Name: "Clientes - Cuentas por Cobrar", Nature: model.NatureAsset, Group: groupCurrentAssets},
		{Code: "1591", Name: "Depreciación Acumulada", Nature: model.NatureAsset, Group: groupNonCurrentAssets},
		{Code: "2111", Name: "Préstamos Bancarios", Nature: model.NatureLiability, Group: groupCurrentLiab},
		{Code: "3311", Name: "Maquinaria y Equipo", Nature: model.NatureAsset, Group: groupNonCurrentAssets},
		{Code: "3321", Name: "Muebles y Enseres", Nature: model.NatureAsset, Group: groupNonCurrentAssets},
		{Code: "3331", Name: "Vehículos", Nature: model.NatureAsset, Group: groupNonCurrentAssets},
		{Code: "4011", Name: "IGV Débito Fiscal", Nature: model.NatureLiability, Group: groupCurrentLiab},
		{Code: "4017", Name: "Renta de Quinta Categoría por Pagar", Nature: model.NatureLiability, Group: groupCurrentLiab},
		{Code: "4031", Name: "ESSALUD por Pagar", Nature: model.NatureLiability, Group: groupCurrentLiab},
		{Code: "4032", Name: "ONP por Pagar", Nature: model.NatureLiability, Group: groupCurrentLiab},
		{Code: "4151", Name: "Gratificaciones por Pagar", Nature: model.NatureLiability, Group: groupCurrentLiab},
		{Code: "4152", Name: "Vacaciones por Pagar", Nature: model.NatureLiability, Group: groupCurrentLiab},
		{Code: "4211", Name: "IGV Crédito Fiscal", Nature: model.NatureAsset, Group: groupCurrentAssets},
		{Code: "5011", Name: "Capital Social", Nature: model.NatureEquity, Group: groupEquity},
		{Code: "6011", Name: "Compras Mercaderías", Nature: model.NatureExpense, Group: groupOperatingExp},
		{Code: "6211", Name: "Sueldos", Nature: model.NatureExpense, Group: groupPersonnelExp},
		{Code: "6261", Name: "Seguridad Social (ESSALUD)", Nature: model.NatureExpense, Group: groupPersonnelExp},
		{Code: "6271", Name: "Gratificaciones", Nature: model.NatureExpense, Group: groupPersonnelExp},
		{Code: "6272", Name: "Vacaciones", Nature: model.NatureExpense, Group: groupPersonnelExp},
		{Code: "6311", Name: "Servicios Básicos", Nature: model.NatureExpense, Group: groupOperatingExp},
		{Code: "6851", Name: "Depreciación del Ejercicio", Nature: model.NatureExpense, Group: groupOperatingExp},
		{Code: "6911", Name: "Costo de Ventas", Nature: model.NatureExpense, Group: groupOtherExp},
		{Code: "7011", Name: "Ventas Mercaderías", Nature: model.NatureIncome, Group: groupRevenue},
	}
}
