package multisig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
)

// ownerSetRecord is the stored form of an OwnerSet. Stark keys are kept as
// 32 byte big-endian integers.
type ownerSetRecord struct {
	Threshold uint32   `protobuf:"varint,1,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Signers   [][]byte `protobuf:"bytes,2,rep,name=signers,proto3" json:"signers,omitempty"`
}

func (m *ownerSetRecord) Reset()         { *m = ownerSetRecord{} }
func (m *ownerSetRecord) String() string { return proto.CompactTextString(m) }
func (*ownerSetRecord) ProtoMessage()    {}

var _ proto.Message = (*ownerSetRecord)(nil)

// marshalOwnerSet returns the protobuf encoding of given owner set.
func marshalOwnerSet(set *OwnerSet) ([]byte, error) {
	rec := ownerSetRecord{
		Threshold: uint32(set.threshold),
		Signers:   make([][]byte, len(set.owners)),
	}
	for i, pk := range set.owners {
		b := pk.Bytes()
		rec.Signers[i] = b[:]
	}
	raw, err := proto.Marshal(&rec)
	if err != nil {
		return nil, errors.Wrap(err, "marshal owner set")
	}
	return raw, nil
}

// unmarshalOwnerSet decodes and validates a stored owner set.
func unmarshalOwnerSet(raw []byte) (*OwnerSet, error) {
	var rec ownerSetRecord
	if err := proto.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "owner set record: %s", err)
	}
	owners := make([]starksig.Felt, len(rec.Signers))
	for i, b := range rec.Signers {
		pk, err := starksig.FeltFromBytes(b)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidModel, "stored stark key %d: %s", i, err)
		}
		owners[i] = pk
	}
	return NewOwnerSet(int(rec.Threshold), owners)
}
