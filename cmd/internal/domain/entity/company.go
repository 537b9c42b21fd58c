package entity

import (
	"slices"
	"strings"
)

const (
	DefaultCIIUCode        = "9999"
	DefaultCIIUDescription = "Actividad No Homologada CIIU v4"
)

// Field names a Company attribute as it is serialized.
type Field string

const (
	FieldRazonSocial          Field = "razon_social"
	FieldNIT                  Field = "nit"
	FieldDV                   Field = "dv"
	FieldCamaraComercio       Field = "camara_comercio"
	FieldMatricula            Field = "matricula"
	FieldEstado               Field = "estado"
	FieldFechaMatricula       Field = "fecha_matricula"
	FieldFechaRenovacion      Field = "fecha_renovacion"
	FieldUltimoAnoRenovado    Field = "ultimo_ano_renovado"
	FieldTipoSociedad         Field = "tipo_sociedad"
	FieldOrganizacionJuridica Field = "organizacion_juridica"
	FieldCodCIIUPrincipal     Field = "cod_ciiu_act_econ_pri"
	FieldDescCIIUPrincipal    Field = "desc_ciiu_act_econ_pri"
)

// Ciiu is an industry classification code/description pair.
// The zero value is the empty classification.
type Ciiu struct {
	Codigo      *string `json:"codigo"`
	Descripcion *string `json:"descripcion"`
}

// NewCiiu builds a classification from the given values, leaving blank ones unset.
func NewCiiu(code, description string) Ciiu {
	return Ciiu{
		Codigo:      optional(code),
		Descripcion: optional(description),
	}
}

func (c Ciiu) IsEmpty() bool {
	return c.Codigo == nil && c.Descripcion == nil
}

// Company is the consolidated registry information of a NIT.
//
// A Company is built once through NewCompany and is never changed afterwards,
// callers only read it or serialize it.
type Company struct {
	RazonSocial          *string `json:"razon_social"`
	NIT                  string  `json:"nit"`
	DV                   *string `json:"dv"`
	CamaraComercio       *string `json:"camara_comercio"`
	Matricula            *string `json:"matricula"`
	Estado               *string `json:"estado"`
	FechaMatricula       *string `json:"fecha_matricula"`
	FechaRenovacion      *string `json:"fecha_renovacion"`
	UltimoAnoRenovado    *string `json:"ultimo_ano_renovado"`
	TipoSociedad         *string `json:"tipo_sociedad"`
	OrganizacionJuridica *string `json:"organizacion_juridica"`

	CIIUPrincipal     Ciiu   `json:"ciiu_principal"`
	CodCIIUPrincipal  string `json:"cod_ciiu_act_econ_pri"`
	DescCIIUPrincipal string `json:"desc_ciiu_act_econ_pri"`
	CIIU2             Ciiu   `json:"ciiu2"`
	CIIU3             Ciiu   `json:"ciiu3"`
	CIIU4             Ciiu   `json:"ciiu4"`

	Fuentes []string `json:"fuentes"`
}

// CompanyData is the merged input of NewCompany.
type CompanyData struct {
	NIT           string
	Fields        map[Field]string
	CIIUPrincipal Ciiu
	CIIU2         Ciiu
	CIIU3         Ciiu
	CIIU4         Ciiu
	Sources       []string
}

// NewCompany builds the record for data. Blank fields stay unset, and the
// principal CIIU code and description fall back to their defaults.
func NewCompany(data CompanyData) *Company {
	get := func(f Field) *string {
		return optional(data.Fields[f])
	}

	principal := trimCiiu(data.CIIUPrincipal)
	codPri := stringOr(principal.Codigo, DefaultCIIUCode)
	descPri := stringOr(principal.Descripcion, DefaultCIIUDescription)

	sources := make([]string, 0, len(data.Sources))
	for _, s := range data.Sources {
		if !slices.Contains(sources, s) {
			sources = append(sources, s)
		}
	}

	return &Company{
		NIT:                  strings.TrimSpace(data.NIT),
		RazonSocial:          get(FieldRazonSocial),
		DV:                   get(FieldDV),
		CamaraComercio:       get(FieldCamaraComercio),
		Matricula:            get(FieldMatricula),
		Estado:               get(FieldEstado),
		FechaMatricula:       get(FieldFechaMatricula),
		FechaRenovacion:      get(FieldFechaRenovacion),
		UltimoAnoRenovado:    get(FieldUltimoAnoRenovado),
		TipoSociedad:         get(FieldTipoSociedad),
		OrganizacionJuridica: get(FieldOrganizacionJuridica),
		CIIUPrincipal:        NewCiiu(codPri, descPri),
		CodCIIUPrincipal:     codPri,
		DescCIIUPrincipal:    descPri,
		CIIU2:                trimCiiu(data.CIIU2),
		CIIU3:                trimCiiu(data.CIIU3),
		CIIU4:                trimCiiu(data.CIIU4),
		Fuentes:              sources,
	}
}

// Fields returns the scalar attributes that are set, keyed by their names.
func (c *Company) Fields() map[Field]string {
	fields := map[Field]string{
		FieldNIT:               c.NIT,
		FieldCodCIIUPrincipal:  c.CodCIIUPrincipal,
		FieldDescCIIUPrincipal: c.DescCIIUPrincipal,
	}

	set := func(f Field, v *string) {
		if v != nil {
			fields[f] = *v
		}
	}
	set(FieldRazonSocial, c.RazonSocial)
	set(FieldDV, c.DV)
	set(FieldCamaraComercio, c.CamaraComercio)
	set(FieldMatricula, c.Matricula)
	set(FieldEstado, c.Estado)
	set(FieldFechaMatricula, c.FechaMatricula)
	set(FieldFechaRenovacion, c.FechaRenovacion)
	set(FieldUltimoAnoRenovado, c.UltimoAnoRenovado)
	set(FieldTipoSociedad, c.TipoSociedad)
	set(FieldOrganizacionJuridica, c.OrganizacionJuridica)
	return fields
}

func (c *Company) HasSource(name string) bool {
	return slices.Contains(c.Fuentes, name)
}

func trimCiiu(c Ciiu) Ciiu {
	return Ciiu{
		Codigo:      trimmed(c.Codigo),
		Descripcion: trimmed(c.Descripcion),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(*s)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
