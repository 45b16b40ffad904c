package tag

import (
	"bytes"
	"errors"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		code int
		want ValueKind
	}{
		{"entity name", 0, KindString},
		{"layer name", 8, KindString},
		{"x coordinate", 10, KindFloat},
		{"scalar float", 48, KindFloat},
		{"int16 flag", 70, KindInt16},
		{"int32 count", 91, KindInt32},
		{"subclass marker", 100, KindString},
		{"owner group marker", 102, KindString},
		{"dimstyle handle", 105, KindHandle},
		{"int64 group", 160, KindInt64},
		{"extrusion z", 230, KindFloat},
		{"int16 high range", 284, KindInt16},
		{"bool group", 290, KindBool},
		{"proxy chunk", 310, KindBinary},
		{"soft pointer", 330, KindHandle},
		{"hard pointer", 360, KindHandle},
		{"lineweight", 370, KindInt16},
		{"plot style handle", 390, KindHandle},
		{"string group 410", 410, KindString},
		{"true color", 420, KindInt32},
		{"transparency", 440, KindInt32},
		{"comment", 999, KindString},
		{"xdata string", 1000, KindString},
		{"xdata float", 1040, KindFloat},
		{"xdata int32", 1071, KindInt32},
		{"outside every range", 85, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.code); got != tt.want {
				t.Errorf("Kind(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestTag_Accessors(t *testing.T) {
	tests := []struct {
		name    string
		tag     Tag
		get     func(Tag) (any, error)
		want    any
		wantErr bool
	}{
		{
			name: "int",
			tag:  Tag{Code: 70, Value: " 1"},
			get:  func(tg Tag) (any, error) { return tg.Int() },
			want: int64(1),
		},
		{
			name:    "int malformed",
			tag:     Tag{Code: 70, Value: "solid"},
			get:     func(tg Tag) (any, error) { return tg.Int() },
			wantErr: true,
		},
		{
			name: "float",
			tag:  Tag{Code: 10, Value: "2.500000"},
			get:  func(tg Tag) (any, error) { return tg.Float() },
			want: 2.5,
		},
		{
			name:    "float malformed",
			tag:     Tag{Code: 10, Value: "10,5"},
			get:     func(tg Tag) (any, error) { return tg.Float() },
			wantErr: true,
		},
		{
			name: "bool true from nonzero",
			tag:  Tag{Code: 290, Value: "1"},
			get:  func(tg Tag) (any, error) { return tg.Bool() },
			want: true,
		},
		{
			name: "bool false",
			tag:  Tag{Code: 290, Value: "0"},
			get:  func(tg Tag) (any, error) { return tg.Bool() },
			want: false,
		},
		{
			name: "handle canonical upper case",
			tag:  Tag{Code: 330, Value: "1af"},
			get:  func(tg Tag) (any, error) { return tg.Handle() },
			want: "1AF",
		},
		{
			name:    "handle not hex",
			tag:     Tag{Code: 330, Value: "zz"},
			get:     func(tg Tag) (any, error) { return tg.Handle() },
			wantErr: true,
		},
		{
			name:    "handle empty",
			tag:     Tag{Code: 330, Value: ""},
			get:     func(tg Tag) (any, error) { return tg.Handle() },
			wantErr: true,
		},
		{
			name:    "bytes odd length",
			tag:     Tag{Code: 310, Value: "ABC"},
			get:     func(tg Tag) (any, error) { return tg.Bytes() },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get(tt.tag)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("got %v, want error", got)
				}
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("error = %v, want ErrMalformed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTag_Bytes(t *testing.T) {
	tg := Tag{Code: 310, Value: "DEADBEEF"}
	got, err := tg.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if !bytes.Equal(got, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("Bytes() = %x, want deadbeef", got)
	}
}

func TestTag_IsSentinel(t *testing.T) {
	if !(Tag{Code: 0, Value: "HATCH"}).IsSentinel() {
		t.Error("code 0 should be a sentinel")
	}
	if (Tag{Code: 8, Value: "0"}).IsSentinel() {
		t.Error("code 8 should not be a sentinel")
	}
}
