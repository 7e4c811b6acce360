package types

import "github.com/reoring/esmodel"

func init() {
	object := func(name string, c esmodel.AnyCodec, d *esmodel.Descriptor) {
		esmodel.Register(esmodel.Model{Name: "types." + name, Codec: c, Object: d})
	}
	union := func(name string, c esmodel.AnyCodec, u *esmodel.UnionDescriptor) {
		esmodel.Register(esmodel.Model{Name: "types." + name, Codec: c, Union: u})
	}

	object("TotalHits", esmodel.Erase(TotalHitsCodec), totalHitsDescriptor)
	object("HitsMetadata", esmodel.Erase(HitsMetadataCodec), hitsMetadataDescriptor)
	object("Hit", esmodel.Erase(HitCodec), hitDescriptor)
	object("ErrorCause", esmodel.Erase(ErrorCauseCodec), errorCauseDescriptor)
	object("FieldAndFormat", esmodel.Erase(FieldAndFormatCodec), fieldAndFormatDescriptor)
	object("NodeInfoSettingsTransportType", esmodel.Erase(NodeInfoSettingsTransportTypeCodec), nodeInfoSettingsTransportTypeDescriptor)

	object("CardinalityAggregate", esmodel.Erase(CardinalityAggregateCodec), cardinalityAggregateDescriptor)
	object("ValueCountAggregate", esmodel.Erase(ValueCountAggregateCodec), valueCountAggregateDescriptor)
	object("RangeBucket", esmodel.Erase(RangeBucketCodec), rangeBucketDescriptor)
	object("RangeAggregate", esmodel.Erase(RangeAggregateCodec), rangeAggregateDescriptor)
	object("DateRangeAggregate", esmodel.Erase(DateRangeAggregateCodec), dateRangeAggregateDescriptor)
	// Aggregate decodes only behind a typed key; the entry serves encoding
	// and schema export.
	union("Aggregate", esmodel.Erase[*Aggregate](AggregateCodec), aggregateDescriptor)

	object("CardinalityAggregation", esmodel.Erase(CardinalityAggregationCodec), cardinalityAggregationDescriptor)
	object("ValueCountAggregation", esmodel.Erase(ValueCountAggregationCodec), valueCountAggregationDescriptor)
	object("DateRangeExpression", esmodel.Erase(DateRangeExpressionCodec), dateRangeExpressionDescriptor)
	object("DateRangeAggregation", esmodel.Erase(DateRangeAggregationCodec), dateRangeAggregationDescriptor)
	union("Aggregation", esmodel.Erase(AggregationCodec), aggregationDescriptor)

	object("MatchAllQuery", esmodel.Erase(MatchAllQueryCodec), matchAllQueryDescriptor)
	object("TermQuery", esmodel.Erase(TermQueryCodec), termQueryDescriptor)
	union("Query", esmodel.Erase(QueryCodec), queryDescriptor)
	object("IntervalsAllOf", esmodel.Erase(IntervalsAllOfCodec), intervalsAllOfDescriptor)
	object("IntervalsMatch", esmodel.Erase(IntervalsMatchCodec), intervalsMatchDescriptor)
	union("Intervals", esmodel.Erase(IntervalsCodec), intervalsDescriptor)
	union("IntervalsQuery", esmodel.Erase(IntervalsQueryCodec), intervalsQueryDescriptor)
}
