package datosgov

import "consultanit/cmd/internal/domain/source"

// Field names as published by the registry.
const (
	KeyRazonSocial          = "razon_social"
	KeyNIT                  = "nit"
	KeyDigitoVerificacion   = "digito_verificacion"
	KeyCamaraComercio       = "camara_comercio"
	KeyCodigoCamara         = "codigo_camara"
	KeyMatricula            = "matricula"
	KeyEstadoMatricula      = "estado_matricula"
	KeyFechaMatricula       = "fecha_matricula"
	KeyFechaRenovacion      = "fecha_renovacion"
	KeyUltimoAnoRenovado    = "ultimo_ano_renovado"
	KeyTipoSociedad         = "tipo_sociedad"
	KeyOrganizacionJuridica = "organizacion_juridica"
	KeyCodCIIUPrincipal     = "cod_ciiu_act_econ_pri"
	KeyDescCIIUPrincipal    = "desc_ciiu_act_econ_pri"
)

type companyResponse struct {
	LegalName          source.String `json:"razon_social"`
	NIT                source.String `json:"nit"`
	VerificationDigit  source.String `json:"digito_verificacion"`
	Chamber            source.String `json:"camara_comercio"`
	ChamberCode        source.String `json:"codigo_camara"`
	RegistrationNumber source.String `json:"matricula"`
	RegistrationStatus source.String `json:"estado_matricula"`
	RegistrationDate   source.String `json:"fecha_matricula"`
	RenewalDate        source.String `json:"fecha_renovacion"`
	LastRenewedYear    source.String `json:"ultimo_ano_renovado"`
	CompanyType        source.String `json:"tipo_sociedad"`
	LegalOrganization  source.String `json:"organizacion_juridica"`
	CIIUCode           source.String `json:"cod_ciiu_act_econ_pri"`
	CIIUDescription    source.String `json:"desc_ciiu_act_econ_pri"`
}

func (c *companyResponse) ToResult() source.Result {
	r := source.Result{}
	r.Set(KeyRazonSocial, string(c.LegalName))
	r.Set(KeyNIT, string(c.NIT))
	r.Set(KeyDigitoVerificacion, string(c.VerificationDigit))
	r.Set(KeyCamaraComercio, string(c.Chamber))
	r.Set(KeyCodigoCamara, string(c.ChamberCode))
	r.Set(KeyMatricula, string(c.RegistrationNumber))
	r.Set(KeyEstadoMatricula, string(c.RegistrationStatus))
	r.Set(KeyFechaMatricula, string(c.RegistrationDate))
	r.Set(KeyFechaRenovacion, string(c.RenewalDate))
	r.Set(KeyUltimoAnoRenovado, string(c.LastRenewedYear))
	r.Set(KeyTipoSociedad, string(c.CompanyType))
	r.Set(KeyOrganizacionJuridica, string(c.LegalOrganization))
	r.Set(KeyCodCIIUPrincipal, string(c.CIIUCode))
	r.Set(KeyDescCIIUPrincipal, string(c.CIIUDescription))
	return r
}
