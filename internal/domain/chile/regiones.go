// Package chile contiene la tabla fija región → comunas usada por los
// formularios de registro y de dirección de entrega.
package chile

// Region agrupa una región administrativa y sus comunas seleccionables.
type Region struct {
	Nombre  string
	Comunas []string
}

// Las 16 regiones, de norte a sur. La lista de comunas es la que ofrece la
// tienda para despacho; no pretende ser el catálogo completo del país.
var regiones = []Region{
	{Nombre: "Arica y Parinacota", Comunas: []string{"Arica", "Camarones", "Putre", "General Lagos"}},
	{Nombre: "Tarapacá", Comunas: []string{"Iquique", "Alto Hospicio", "Pozo Almonte", "Pica"}},
	{Nombre: "Antofagasta", Comunas: []string{"Antofagasta", "Calama", "Tocopilla", "Mejillones", "Taltal"}},
	{Nombre: "Atacama", Comunas: []string{"Copiapó", "Caldera", "Vallenar", "Chañaral"}},
	{Nombre: "Coquimbo", Comunas: []string{"La Serena", "Coquimbo", "Ovalle", "Illapel", "Vicuña"}},
	{Nombre: "Valparaíso", Comunas: []string{"Valparaíso", "Viña del Mar", "Quilpué", "Villa Alemana", "San Antonio", "Quillota", "Los Andes"}},
	{Nombre: "Metropolitana de Santiago", Comunas: []string{
		"Santiago", "Providencia", "Las Condes", "Ñuñoa", "La Florida", "Maipú",
		"Puente Alto", "San Bernardo", "Estación Central", "Recoleta", "Independencia",
		"La Reina", "Macul", "Peñalolén", "Quilicura", "Renca", "Vitacura", "Huechuraba",
	}},
	{Nombre: "Libertador General Bernardo O'Higgins", Comunas: []string{"Rancagua", "San Fernando", "Rengo", "Machalí", "Santa Cruz"}},
	{Nombre: "Maule", Comunas: []string{"Talca", "Curicó", "Linares", "Constitución", "Cauquenes"}},
	{Nombre: "Ñuble", Comunas: []string{"Chillán", "Chillán Viejo", "San Carlos", "Bulnes"}},
	{Nombre: "Biobío", Comunas: []string{"Concepción", "Talcahuano", "San Pedro de la Paz", "Hualpén", "Coronel", "Los Ángeles"}},
	{Nombre: "La Araucanía", Comunas: []string{"Temuco", "Padre Las Casas", "Villarrica", "Angol", "Pucón"}},
	{Nombre: "Los Ríos", Comunas: []string{"Valdivia", "La Unión", "Panguipulli", "Río Bueno"}},
	{Nombre: "Los Lagos", Comunas: []string{"Puerto Montt", "Puerto Varas", "Osorno", "Castro", "Ancud"}},
	{Nombre: "Aysén del General Carlos Ibáñez del Campo", Comunas: []string{"Coyhaique", "Aysén", "Chile Chico"}},
	{Nombre: "Magallanes y de la Antártica Chilena", Comunas: []string{"Punta Arenas", "Puerto Natales", "Porvenir"}},
}

// Regiones devuelve la tabla completa, en orden.
func Regiones() []Region {
	out := make([]Region, len(regiones))
	copy(out, regiones)
	return out
}

// Comunas devuelve las comunas de la región indicada. ok es false si la
// región no existe en la tabla.
func Comunas(region string) (comunas []string, ok bool) {
	for _, r := range regiones {
		if r.Nombre == region {
			out := make([]string, len(r.Comunas))
			copy(out, r.Comunas)
			return out, true
		}
	}
	return nil, false
}

// RegionValida indica si el nombre corresponde a una región de la tabla.
func RegionValida(region string) bool {
	_, ok := Comunas(region)
	return ok
}

// ComunaValida indica si la comuna pertenece a la región.
func ComunaValida(region, comuna string) bool {
	comunas, ok := Comunas(region)
	if !ok {
		return false
	}
	for _, c := range comunas {
		if c == comuna {
			return true
		}
	}
	return false
}
