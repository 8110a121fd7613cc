package cpabe

import (
	"bytes"

	"github.com/mmsyan/cpabe-core/cpabeerr"
	"github.com/mmsyan/cpabe-core/codec"
	"github.com/mmsyan/cpabe-core/pairing"
	"github.com/mmsyan/cpabe-core/policy"
)

// SerializePublicParams writes pub per §4.7: pairing_desc, then g, h, g2,
// egg_alpha in order.
func SerializePublicParams(pub PublicParams) []byte {
	var buf bytes.Buffer
	codec.WriteCString(&buf, pub.PairingDesc)
	codec.WriteBytes(&buf, pub.G.Bytes())
	codec.WriteBytes(&buf, pub.H.Bytes())
	codec.WriteBytes(&buf, pub.G2.Bytes())
	codec.WriteBytes(&buf, pub.EggAlpha.Bytes())
	return buf.Bytes()
}

// DeserializePublicParams reads the layout SerializePublicParams writes.
func DeserializePublicParams(b []byte) (PublicParams, error) {
	desc, rest, err := codec.ReadCString(b)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.pairing_desc", codec.Wrap(err, "decode"))
	}
	gBytes, rest, err := codec.ReadBytes(rest)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.g", codec.Wrap(err, "decode"))
	}
	g, err := pairing.G1FromBytes(gBytes)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.g", codec.Wrap(err, "decode"))
	}
	hBytes, rest, err := codec.ReadBytes(rest)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.h", codec.Wrap(err, "decode"))
	}
	h, err := pairing.G1FromBytes(hBytes)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.h", codec.Wrap(err, "decode"))
	}
	g2Bytes, rest, err := codec.ReadBytes(rest)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.g2", codec.Wrap(err, "decode"))
	}
	g2, err := pairing.G2FromBytes(g2Bytes)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.g2", codec.Wrap(err, "decode"))
	}
	eggBytes, _, err := codec.ReadBytes(rest)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.egg_alpha", codec.Wrap(err, "decode"))
	}
	egg, err := pairing.GTFromBytes(eggBytes)
	if err != nil {
		return PublicParams{}, cpabeerr.NewDeserializeError("PublicParams.egg_alpha", codec.Wrap(err, "decode"))
	}

	return PublicParams{PairingDesc: desc, G: g, H: h, G2: g2, EggAlpha: egg}, nil
}

// SerializeMasterSecret writes msk per §4.7: beta, g_alpha.
func SerializeMasterSecret(msk MasterSecret) []byte {
	var buf bytes.Buffer
	codec.WriteBytes(&buf, msk.Beta.Bytes())
	codec.WriteBytes(&buf, msk.GAlpha.Bytes())
	return buf.Bytes()
}

// DeserializeMasterSecret reads the layout SerializeMasterSecret writes.
func DeserializeMasterSecret(b []byte) (MasterSecret, error) {
	betaBytes, rest, err := codec.ReadBytes(b)
	if err != nil {
		return MasterSecret{}, cpabeerr.NewDeserializeError("MasterSecret.beta", codec.Wrap(err, "decode"))
	}
	beta, err := pairing.ZrFromBytes(betaBytes)
	if err != nil {
		return MasterSecret{}, cpabeerr.NewDeserializeError("MasterSecret.beta", codec.Wrap(err, "decode"))
	}
	gAlphaBytes, _, err := codec.ReadBytes(rest)
	if err != nil {
		return MasterSecret{}, cpabeerr.NewDeserializeError("MasterSecret.g_alpha", codec.Wrap(err, "decode"))
	}
	gAlpha, err := pairing.G2FromBytes(gAlphaBytes)
	if err != nil {
		return MasterSecret{}, cpabeerr.NewDeserializeError("MasterSecret.g_alpha", codec.Wrap(err, "decode"))
	}
	return MasterSecret{Beta: beta, GAlpha: gAlpha}, nil
}

// SerializePrivateKey writes prv per §4.7: D, uint32 n, then n records of
// (attr, Dj, Dj').
func SerializePrivateKey(prv PrivateKey) []byte {
	var buf bytes.Buffer
	codec.WriteBytes(&buf, prv.D.Bytes())
	codec.WriteUint32(&buf, uint32(len(prv.Components)))
	for _, c := range prv.Components {
		codec.WriteCString(&buf, c.Attr)
		codec.WriteBytes(&buf, c.Dj.Bytes())
		codec.WriteBytes(&buf, c.DjP.Bytes())
	}
	return buf.Bytes()
}

// DeserializePrivateKey reads the layout SerializePrivateKey writes.
func DeserializePrivateKey(b []byte) (PrivateKey, error) {
	dBytes, rest, err := codec.ReadBytes(b)
	if err != nil {
		return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.D", codec.Wrap(err, "decode"))
	}
	d, err := pairing.G2FromBytes(dBytes)
	if err != nil {
		return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.D", codec.Wrap(err, "decode"))
	}

	n, rest, err := codec.ReadUint32(rest)
	if err != nil {
		return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.n", codec.Wrap(err, "decode"))
	}

	components := make([]PrivateKeyComponent, n)
	for i := range components {
		attr, r, err := codec.ReadCString(rest)
		if err != nil {
			return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.components[].attr", codec.Wrap(err, "decode"))
		}
		rest = r
		djBytes, r, err := codec.ReadBytes(rest)
		if err != nil {
			return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.components[].Dj", codec.Wrap(err, "decode"))
		}
		rest = r
		dj, err := pairing.G2FromBytes(djBytes)
		if err != nil {
			return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.components[].Dj", codec.Wrap(err, "decode"))
		}
		djpBytes, r, err := codec.ReadBytes(rest)
		if err != nil {
			return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.components[].Dj'", codec.Wrap(err, "decode"))
		}
		rest = r
		djp, err := pairing.G2FromBytes(djpBytes)
		if err != nil {
			return PrivateKey{}, cpabeerr.NewDeserializeError("PrivateKey.components[].Dj'", codec.Wrap(err, "decode"))
		}
		components[i] = PrivateKeyComponent{Attr: attr, Dj: dj, DjP: djp}
	}

	return PrivateKey{D: d, Components: components}, nil
}

// SerializeCiphertext writes cph per §4.7: CTilde, C, then the policy
// tree.
func SerializeCiphertext(cph Ciphertext) ([]byte, error) {
	var buf bytes.Buffer
	codec.WriteBytes(&buf, cph.CTilde.Bytes())
	codec.WriteBytes(&buf, cph.C.Bytes())
	if err := policy.Serialize(&buf, cph.Root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeCiphertext reads the layout SerializeCiphertext writes.
func DeserializeCiphertext(b []byte) (Ciphertext, error) {
	cTildeBytes, rest, err := codec.ReadBytes(b)
	if err != nil {
		return Ciphertext{}, cpabeerr.NewDeserializeError("Ciphertext.CTilde", codec.Wrap(err, "decode"))
	}
	cTilde, err := pairing.GTFromBytes(cTildeBytes)
	if err != nil {
		return Ciphertext{}, cpabeerr.NewDeserializeError("Ciphertext.CTilde", codec.Wrap(err, "decode"))
	}

	cBytes, rest, err := codec.ReadBytes(rest)
	if err != nil {
		return Ciphertext{}, cpabeerr.NewDeserializeError("Ciphertext.C", codec.Wrap(err, "decode"))
	}
	c, err := pairing.G1FromBytes(cBytes)
	if err != nil {
		return Ciphertext{}, cpabeerr.NewDeserializeError("Ciphertext.C", codec.Wrap(err, "decode"))
	}

	root, rest, err := policy.Deserialize(rest)
	if err != nil {
		return Ciphertext{}, cpabeerr.NewDeserializeError("Ciphertext.root", codec.Wrap(err, "decode"))
	}
	if len(rest) != 0 {
		return Ciphertext{}, cpabeerr.NewDeserializeError("Ciphertext", codec.ErrTrailingData)
	}

	return Ciphertext{CTilde: cTilde, C: c, Root: root}, nil
}
