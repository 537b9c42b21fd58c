package service

import (
	"consultanit/cmd/internal/domain/entity"
	"consultanit/cmd/internal/domain/source"
	"consultanit/cmd/internal/infrastructure/datosgov"
	"consultanit/cmd/internal/infrastructure/rues"
)

type fieldMapping struct {
	field     entity.Field
	primary   string
	secondary string
}

// fieldTable translates registry keys into Company fields.
// The primary registry value wins whenever it is set.
var fieldTable = []fieldMapping{
	{entity.FieldRazonSocial, datosgov.KeyRazonSocial, rues.KeyRazonSocial},
	{entity.FieldDV, datosgov.KeyDigitoVerificacion, rues.KeyDV},
	{entity.FieldCamaraComercio, datosgov.KeyCamaraComercio, rues.KeyCamara},
	{entity.FieldMatricula, datosgov.KeyMatricula, rues.KeyMatricula},
	{entity.FieldEstado, datosgov.KeyEstadoMatricula, rues.KeyEstado},
	{entity.FieldFechaMatricula, datosgov.KeyFechaMatricula, rues.KeyFechaMatricula},
	{entity.FieldFechaRenovacion, datosgov.KeyFechaRenovacion, rues.KeyFechaRenovacion},
	{entity.FieldUltimoAnoRenovado, datosgov.KeyUltimoAnoRenovado, rues.KeyUltimoAnoRenovado},
	{entity.FieldTipoSociedad, datosgov.KeyTipoSociedad, rues.KeyTipoSociedad},
	{entity.FieldOrganizacionJuridica, datosgov.KeyOrganizacionJuridica, rues.KeyOrganizacionJuridica},
	{entity.FieldCodCIIUPrincipal, datosgov.KeyCodCIIUPrincipal, rues.KeyCodCIIUPrincipal},
	{entity.FieldDescCIIUPrincipal, datosgov.KeyDescCIIUPrincipal, rues.KeyDescCIIUPrincipal},
}

// secondaryCIIUKeys lists the code/description keys of ciiu2, ciiu3 and ciiu4.
// These only come from the secondary registry.
var secondaryCIIUKeys = [3][2]string{
	{rues.KeyCodCIIUSecundario, rues.KeyDescCIIUSecundario},
	{rues.KeyCIIU3, rues.KeyDescCIIU3},
	{rues.KeyCIIU4, rues.KeyDescCIIU4},
}

func (s *NitService) merge(nit string, primary, secondary source.Result) *entity.Company {
	fields := make(map[entity.Field]string, len(fieldTable))
	for _, m := range fieldTable {
		if v := firstSet(primary.Get(m.primary), secondary.Get(m.secondary)); v != "" {
			fields[m.field] = v
		}
	}

	var sources []string
	if !primary.IsEmpty() {
		sources = append(sources, s.Primary.Name())
	}
	if !secondary.IsEmpty() {
		sources = append(sources, s.Secondary.Name())
	}

	var extra [3]entity.Ciiu
	for i, keys := range secondaryCIIUKeys {
		extra[i] = entity.NewCiiu(secondary.Get(keys[0]), secondary.Get(keys[1]))
	}

	principal := entity.NewCiiu(fields[entity.FieldCodCIIUPrincipal], fields[entity.FieldDescCIIUPrincipal])

	return entity.NewCompany(entity.CompanyData{
		NIT:           nit,
		Fields:        fields,
		CIIUPrincipal: principal,
		CIIU2:         extra[0],
		CIIU3:         extra[1],
		CIIU4:         extra[2],
		Sources:       sources,
	})
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
