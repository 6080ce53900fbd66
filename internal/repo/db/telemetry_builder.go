package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type sensorListQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildSensorListQuery(
	ctx context.Context,
	deviceID string,
	page, size int,
	filters map[string]any,
) (sensorListQuery, error) {
	const op = "telemetry.buildSensorListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().
		From("sensor_data s").
		Where(sq.Eq{"s.device_id": deviceID}).
		PlaceholderFormat(sq.Dollar)

	if status, ok := filters["status"].(string); ok {
		query = query.Where(sq.Eq{"s.status": status})
	}

	countSql, countArgs, err := query.Columns("COUNT(s.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return sensorListQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"s.id",
			"s.device_id",
			"s.timestamp",
			"s.gas",
			"s.temperature",
			"s.humidity",
			"s.distance",
			"s.status",
		).
		OrderBy("s.timestamp DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return sensorListQuery{}, err
	}

	return sensorListQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
