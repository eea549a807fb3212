// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	maphHGWk7FY4wZ5Z4Om7hFsJQΞΞ   = ord.NewMapSer[string, float64](ord.String, varint.Float64)
	slicep0Id7yR1Hu1L0idrhvAcrAΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicey631GLnusi7tK1fOzwseDAΞΞ = ord.NewSliceSer[string](ord.String)
)

var RecordTypeMUS = recordTypeMUS{}

type recordTypeMUS struct{}

func (s recordTypeMUS) Marshal(v RecordType, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s recordTypeMUS) Unmarshal(bs []byte) (v RecordType, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = RecordType(tmp)
	return
}

func (s recordTypeMUS) Size(v RecordType) (size int) {
	return ord.String.Size(string(v))
}

func (s recordTypeMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return ord.String.Size(string(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var EmotionProfileMUS = emotionProfileMUS{}

type emotionProfileMUS struct{}

func (s emotionProfileMUS) Marshal(v EmotionProfile, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.OverallScore, bs)
	n += slicey631GLnusi7tK1fOzwseDAΞΞ.Marshal(v.DominantEmotions, bs[n:])
	return n + maphHGWk7FY4wZ5Z4Om7hFsJQΞΞ.Marshal(v.EmotionScores, bs[n:])
}

func (s emotionProfileMUS) Unmarshal(bs []byte) (v EmotionProfile, n int, err error) {
	v.OverallScore, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DominantEmotions, n1, err = slicey631GLnusi7tK1fOzwseDAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EmotionScores, n1, err = maphHGWk7FY4wZ5Z4Om7hFsJQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s emotionProfileMUS) Size(v EmotionProfile) (size int) {
	size = varint.Float64.Size(v.OverallScore)
	size += slicey631GLnusi7tK1fOzwseDAΞΞ.Size(v.DominantEmotions)
	return size + maphHGWk7FY4wZ5Z4Om7hFsJQΞΞ.Size(v.EmotionScores)
}

func (s emotionProfileMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slicey631GLnusi7tK1fOzwseDAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = maphHGWk7FY4wZ5Z4Om7hFsJQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var ContextRecordMUS = contextRecordMUS{}

type contextRecordMUS struct{}

func (s contextRecordMUS) Marshal(v ContextRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Content, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Date, bs[n:])
	n += EmotionProfileMUS.Marshal(v.Emotions, bs[n:])
	n += slicey631GLnusi7tK1fOzwseDAΞΞ.Marshal(v.Keywords, bs[n:])
	n += slicep0Id7yR1Hu1L0idrhvAcrAΞΞ.Marshal(v.Embedding, bs[n:])
	n += RecordTypeMUS.Marshal(v.Type, bs[n:])
	n += IDMUS.Marshal(v.ParentId, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s contextRecordMUS) Unmarshal(bs []byte) (v ContextRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Date, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Emotions, n1, err = EmotionProfileMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = slicey631GLnusi7tK1fOzwseDAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = slicep0Id7yR1Hu1L0idrhvAcrAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Type, n1, err = RecordTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ParentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s contextRecordMUS) Size(v ContextRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Content)
	size += raw.TimeUnixMicro.Size(v.Date)
	size += EmotionProfileMUS.Size(v.Emotions)
	size += slicey631GLnusi7tK1fOzwseDAΞΞ.Size(v.Keywords)
	size += slicep0Id7yR1Hu1L0idrhvAcrAΞΞ.Size(v.Embedding)
	size += RecordTypeMUS.Size(v.Type)
	size += IDMUS.Size(v.ParentId)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s contextRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EmotionProfileMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicey631GLnusi7tK1fOzwseDAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicep0Id7yR1Hu1L0idrhvAcrAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RecordTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
