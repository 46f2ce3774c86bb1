package catalog

func f(v float64) *float64 { return &v }

// DefaultCatalog is the base market list loaded when no external
// catalog has been provisioned. Prices are CLP per unit.
func DefaultCatalog() []FoodItem {
	return []FoodItem{
		{ID: "base-1", Name: "Pechuga de Pollo", Group: "Carnes y Vísceras", Unit: "kg", UnitPrice: 5500, CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, LipidsPer100g: 3.6, PortionGrams: 150, WeeklyFrequency: 4, MonthlyQuantity: 3},
		{ID: "base-2", Name: "Posta Negra", Group: "Carnes y Vísceras", Unit: "kg", UnitPrice: 9800, CaloriesPer100g: 187, ProteinPer100g: 28, CarbsPer100g: 0, LipidsPer100g: 8, PortionGrams: 120, WeeklyFrequency: 2, MonthlyQuantity: 1},
		{ID: "base-3", Name: "Salmón Fresco", Group: "Pescados y Mariscos", Unit: "kg", UnitPrice: 11200, CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, LipidsPer100g: 13, PortionGrams: 130, WeeklyFrequency: 1, MonthlyQuantity: 1},
		{ID: "base-4", Name: "Jurel en Conserva", Group: "Pescados y Mariscos", Unit: "unidad", UnitPrice: 1400, CaloriesPer100g: 158, ProteinPer100g: 23, CarbsPer100g: 0, LipidsPer100g: 6.8, PortionGrams: 90, WeeklyFrequency: 2, MonthlyQuantity: 4},
		{ID: "base-5", Name: "Huevos", Group: "Huevos", Unit: "docena", UnitPrice: 3200, CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, LipidsPer100g: 11, PortionGrams: 100, WeeklyFrequency: 5, MonthlyQuantity: 2},
		{ID: "base-6", Name: "Arroz Grado 1", Group: "Cereales y Derivados", Unit: "kg", UnitPrice: 1200, CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, LipidsPer100g: 0.3, PortionGrams: 100, WeeklyFrequency: 5, MonthlyQuantity: 2},
		{ID: "base-7", Name: "Fideos Espirales", Group: "Cereales y Derivados", Unit: "kg", UnitPrice: 1350, CaloriesPer100g: 157, ProteinPer100g: 5.8, CarbsPer100g: 30, LipidsPer100g: 0.9, PortionGrams: 110, WeeklyFrequency: 3, MonthlyQuantity: 2},
		{ID: "base-8", Name: "Pan Marraqueta", Group: "Cereales y Derivados", Unit: "kg", UnitPrice: 1800, CaloriesPer100g: 270, ProteinPer100g: 8.2, CarbsPer100g: 55, LipidsPer100g: 1.5, PortionGrams: 100, WeeklyFrequency: 7, MonthlyQuantity: 4},
		{ID: "base-9", Name: "Avena Tradicional", Group: "Cereales y Derivados", Unit: "kg", UnitPrice: 2100, CaloriesPer100g: 389, ProteinPer100g: 16.9, CarbsPer100g: 66, LipidsPer100g: 6.9, PortionGrams: 50, WeeklyFrequency: 5, MonthlyQuantity: 1},
		{ID: "base-10", Name: "Manzanas", Group: "Frutas", Unit: "kg", UnitPrice: 1500, CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, LipidsPer100g: 0.2, SugarsPer100g: f(10.4), PortionGrams: 120, WeeklyFrequency: 7, MonthlyQuantity: 4},
		{ID: "base-11", Name: "Plátanos", Group: "Frutas", Unit: "kg", UnitPrice: 1300, CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, LipidsPer100g: 0.3, SugarsPer100g: f(12.2), PortionGrams: 110, WeeklyFrequency: 5, MonthlyQuantity: 3},
		{ID: "base-12", Name: "Espinaca", Group: "Verduras", Unit: "kg", UnitPrice: 2400, CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, LipidsPer100g: 0.4, PortionGrams: 80, WeeklyFrequency: 3, MonthlyQuantity: 1},
		{ID: "base-13", Name: "Tomates", Group: "Verduras", Unit: "kg", UnitPrice: 1900, CaloriesPer100g: 18, ProteinPer100g: 0.9, CarbsPer100g: 3.9, LipidsPer100g: 0.2, PortionGrams: 100, WeeklyFrequency: 6, MonthlyQuantity: 3},
		{ID: "base-14", Name: "Leche Entera", Group: "Lácteos", Unit: "litro", UnitPrice: 1100, CaloriesPer100g: 61, ProteinPer100g: 3.2, CarbsPer100g: 4.8, LipidsPer100g: 3.3, PortionGrams: 200, WeeklyFrequency: 7, MonthlyQuantity: 8},
		{ID: "base-15", Name: "Yogur Natural", Group: "Lácteos", Unit: "unidad", UnitPrice: 450, CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, LipidsPer100g: 0.4, PortionGrams: 125, WeeklyFrequency: 5, MonthlyQuantity: 10},
		{ID: "base-16", Name: "Porotos Negros", Group: "Legumbres", Unit: "kg", UnitPrice: 2900, CaloriesPer100g: 132, ProteinPer100g: 8.9, CarbsPer100g: 24, LipidsPer100g: 0.5, PortionGrams: 90, WeeklyFrequency: 2, MonthlyQuantity: 1},
		{ID: "base-17", Name: "Lentejas", Group: "Legumbres", Unit: "kg", UnitPrice: 2500, CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, LipidsPer100g: 0.4, PortionGrams: 90, WeeklyFrequency: 2, MonthlyQuantity: 1},
		{ID: "base-18", Name: "Mermelada de Frutilla", Group: "Varios", Unit: "unidad", UnitPrice: 1700, CaloriesPer100g: 250, ProteinPer100g: 0.4, CarbsPer100g: 62, LipidsPer100g: 0.1, SugarsPer100g: f(48), PortionGrams: 20, WeeklyFrequency: 4, MonthlyQuantity: 1},
	}
}
