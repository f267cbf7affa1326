package notion

import (
	"context"

	"github.com/kokumai1113/task-app/core"
)

// schemaInfo couples resolved roles with the property types behind them
type schemaInfo struct {
	roles core.SchemaMap
	types map[string]string
}

// resolveSchema discovers the live property names of a collection and maps
// them to roles. Discovery is best effort: when metadata cannot be fetched
// the policy fallback is returned together with the advisory error, and
// callers carry on with it. Discovery never aborts an operation.
func resolveSchema(ctx context.Context, api RecordAPI, databaseID string, policy core.RolePolicy) (schemaInfo, error) {
	db, err := api.GetDatabase(ctx, databaseID)
	if err != nil {
		return schemaInfo{roles: policy.Fallback}, err
	}

	fields := make([]core.FieldMeta, 0, len(db.Properties))
	types := make(map[string]string, len(db.Properties))
	for name, def := range db.Properties {
		fields = append(fields, core.FieldMeta{Name: name, Type: def.Type})
		types[name] = def.Type
	}

	return schemaInfo{
		roles: core.ResolveRoles(fields, policy),
		types: types,
	}, nil
}

// propertyType reports the discovered type of a property, or the given
// fallback when discovery had nothing to say about it
func (s schemaInfo) propertyType(name, fallback string) string {
	if t, ok := s.types[name]; ok {
		return t
	}
	return fallback
}
