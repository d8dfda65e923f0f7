package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDItemStackRequest is ItemStackRequest's stable network ID.
const IDItemStackRequest uint32 = 147

// Canonical item-stack-request action IDs, matching protocol >= 1.18.10
// (§4.5.2). actionPlaceIntoBundle and actionTakeFromBundle are the range
// that is simply absent on the wire for older protocols; actionLabTable
// Combine and everything at or above it shift down by actionIDShift on
// those older protocols.
const (
	actionTake uint8 = iota
	actionPlace
	actionSwap
	actionDrop
	actionDestroy
	actionCraftingConsumeInput
	actionCraftingMarkSecondaryResult
	actionPlaceIntoBundle
	actionTakeFromBundle
	actionLabTableCombine
	actionBeaconPayment
	actionMineBlock
	actionCraftRecipe
	actionCraftRecipeAuto
	actionCreativeCreate
	actionCraftRecipeOptional
	actionGrindstone
	actionLoom
	actionDeprecatedCraftingNonImplemented
	actionDeprecatedCraftingResults
)

// actionIDShift is LAB_TABLE_COMBINE - PLACE_INTO_BUNDLE (§4.5.2): the
// number of canonical tags that simply don't exist on protocols older
// than 1.18.10.
const actionIDShift = actionLabTableCombine - actionPlaceIntoBundle

// wireActionTag maps a canonical action tag to its on-wire tag for proto,
// applying §4.5.2's renumbering shim. Its inverse is canonicalActionTag.
func wireActionTag(canonical uint8, proto uint32) uint8 {
	if proto >= protocol.Proto1_18_10 || canonical < actionLabTableCombine {
		return canonical
	}
	return canonical - actionIDShift
}

func canonicalActionTag(wire uint8, proto uint32) uint8 {
	if proto >= protocol.Proto1_18_10 || wire < actionPlaceIntoBundle {
		return wire
	}
	return wire + actionIDShift
}

// StackRequestSlotInfo identifies one inventory slot participating in an
// item-stack-request action: which container, which slot index within it,
// and the client's last-known stack network ID for optimistic-lock
// validation.
type StackRequestSlotInfo struct {
	ContainerID    byte
	Slot           byte
	StackNetworkID int32
}

func readStackRequestSlotInfo(r *protocol.Reader, v *StackRequestSlotInfo) error {
	var err error
	if v.ContainerID, err = r.ReadByte(); err != nil {
		return err
	}
	if v.Slot, err = r.ReadByte(); err != nil {
		return err
	}
	var id int32
	if err := r.ReadVarInt32(&id); err != nil {
		return err
	}
	v.StackNetworkID = id
	return nil
}

func writeStackRequestSlotInfo(w *protocol.Writer, v StackRequestSlotInfo) error {
	if err := w.WriteByte(v.ContainerID); err != nil {
		return err
	}
	if err := w.WriteByte(v.Slot); err != nil {
		return err
	}
	return w.WriteVarInt32(v.StackNetworkID)
}

// ItemStackRequestAction is one action in an ItemStackRequest's closed
// ~20-variant union (§4.5.3). Each variant knows its own canonical tag and
// how to read/write its payload; dispatch over the union lives in
// decodeAction/encodeAction below.
type ItemStackRequestAction interface {
	ActionTag() uint8
	readPayload(r *protocol.Reader) error
	writePayload(w *protocol.Writer) error
}

type TakeAction struct {
	Count       byte
	Source      StackRequestSlotInfo
	Destination StackRequestSlotInfo
}

type PlaceAction struct {
	Count       byte
	Source      StackRequestSlotInfo
	Destination StackRequestSlotInfo
}

type SwapAction struct {
	Source      StackRequestSlotInfo
	Destination StackRequestSlotInfo
}

type DropAction struct {
	Count    byte
	Source   StackRequestSlotInfo
	Randomly bool
}

type DestroyAction struct {
	Count  byte
	Source StackRequestSlotInfo
}

type CraftingConsumeInputAction struct {
	Count  byte
	Source StackRequestSlotInfo
}

type CraftingMarkSecondaryResultAction struct {
	ResultSlot byte
}

type PlaceIntoBundleAction struct {
	Count       byte
	Source      StackRequestSlotInfo
	Destination StackRequestSlotInfo
	BundleIndex byte
}

type TakeFromBundleAction struct {
	Count       byte
	Source      StackRequestSlotInfo
	Destination StackRequestSlotInfo
	BundleIndex byte
}

type LabTableCombineAction struct{}

type BeaconPaymentAction struct {
	PrimaryEffect   int32
	SecondaryEffect int32
}

type MineBlockAction struct {
	SlotID        int32
	ItemNetworkID int32
	ItemMetadata  int32
}

type CraftRecipeAction struct {
	RecipeNetworkID uint32
}

type CraftRecipeAutoAction struct {
	RecipeNetworkID  uint32
	RepetitionCount  byte
}

type CreativeCreateAction struct {
	CreativeItemNetworkID uint32
}

type CraftRecipeOptionalAction struct {
	RecipeNetworkID   uint32
	FilterStringIndex int32
}

type GrindstoneAction struct {
	RecipeNetworkID uint32
	Cost            int32
}

type LoomAction struct {
	PatternIndex uint32
}

// DeprecatedCraftingNonImplementedAction and DeprecatedCraftingResultsAction
// carry no payload: they are wire-compatible markers kept only so an older
// peer's bytes still parse (§4.5.3).
type DeprecatedCraftingNonImplementedAction struct{}
type DeprecatedCraftingResultsAction struct{}

func (a *TakeAction) ActionTag() uint8                                   { return actionTake }
func (a *PlaceAction) ActionTag() uint8                                  { return actionPlace }
func (a *SwapAction) ActionTag() uint8                                   { return actionSwap }
func (a *DropAction) ActionTag() uint8                                   { return actionDrop }
func (a *DestroyAction) ActionTag() uint8                                { return actionDestroy }
func (a *CraftingConsumeInputAction) ActionTag() uint8                   { return actionCraftingConsumeInput }
func (a *CraftingMarkSecondaryResultAction) ActionTag() uint8            { return actionCraftingMarkSecondaryResult }
func (a *PlaceIntoBundleAction) ActionTag() uint8                        { return actionPlaceIntoBundle }
func (a *TakeFromBundleAction) ActionTag() uint8                         { return actionTakeFromBundle }
func (a *LabTableCombineAction) ActionTag() uint8                        { return actionLabTableCombine }
func (a *BeaconPaymentAction) ActionTag() uint8                          { return actionBeaconPayment }
func (a *MineBlockAction) ActionTag() uint8                              { return actionMineBlock }
func (a *CraftRecipeAction) ActionTag() uint8                            { return actionCraftRecipe }
func (a *CraftRecipeAutoAction) ActionTag() uint8                        { return actionCraftRecipeAuto }
func (a *CreativeCreateAction) ActionTag() uint8                         { return actionCreativeCreate }
func (a *CraftRecipeOptionalAction) ActionTag() uint8                    { return actionCraftRecipeOptional }
func (a *GrindstoneAction) ActionTag() uint8                             { return actionGrindstone }
func (a *LoomAction) ActionTag() uint8                                   { return actionLoom }
func (a *DeprecatedCraftingNonImplementedAction) ActionTag() uint8       { return actionDeprecatedCraftingNonImplemented }
func (a *DeprecatedCraftingResultsAction) ActionTag() uint8              { return actionDeprecatedCraftingResults }

func (a *TakeAction) readPayload(r *protocol.Reader) error {
	var err error
	if a.Count, err = r.ReadByte(); err != nil {
		return err
	}
	if err := readStackRequestSlotInfo(r, &a.Source); err != nil {
		return err
	}
	return readStackRequestSlotInfo(r, &a.Destination)
}
func (a *TakeAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteByte(a.Count); err != nil {
		return err
	}
	if err := writeStackRequestSlotInfo(w, a.Source); err != nil {
		return err
	}
	return writeStackRequestSlotInfo(w, a.Destination)
}

func (a *PlaceAction) readPayload(r *protocol.Reader) error {
	var err error
	if a.Count, err = r.ReadByte(); err != nil {
		return err
	}
	if err := readStackRequestSlotInfo(r, &a.Source); err != nil {
		return err
	}
	return readStackRequestSlotInfo(r, &a.Destination)
}
func (a *PlaceAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteByte(a.Count); err != nil {
		return err
	}
	if err := writeStackRequestSlotInfo(w, a.Source); err != nil {
		return err
	}
	return writeStackRequestSlotInfo(w, a.Destination)
}

func (a *SwapAction) readPayload(r *protocol.Reader) error {
	if err := readStackRequestSlotInfo(r, &a.Source); err != nil {
		return err
	}
	return readStackRequestSlotInfo(r, &a.Destination)
}
func (a *SwapAction) writePayload(w *protocol.Writer) error {
	if err := writeStackRequestSlotInfo(w, a.Source); err != nil {
		return err
	}
	return writeStackRequestSlotInfo(w, a.Destination)
}

func (a *DropAction) readPayload(r *protocol.Reader) error {
	var err error
	if a.Count, err = r.ReadByte(); err != nil {
		return err
	}
	if err := readStackRequestSlotInfo(r, &a.Source); err != nil {
		return err
	}
	return r.ReadBool(&a.Randomly)
}
func (a *DropAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteByte(a.Count); err != nil {
		return err
	}
	if err := writeStackRequestSlotInfo(w, a.Source); err != nil {
		return err
	}
	return w.WriteBool(a.Randomly)
}

func (a *DestroyAction) readPayload(r *protocol.Reader) error {
	var err error
	if a.Count, err = r.ReadByte(); err != nil {
		return err
	}
	return readStackRequestSlotInfo(r, &a.Source)
}
func (a *DestroyAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteByte(a.Count); err != nil {
		return err
	}
	return writeStackRequestSlotInfo(w, a.Source)
}

func (a *CraftingConsumeInputAction) readPayload(r *protocol.Reader) error {
	var err error
	if a.Count, err = r.ReadByte(); err != nil {
		return err
	}
	return readStackRequestSlotInfo(r, &a.Source)
}
func (a *CraftingConsumeInputAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteByte(a.Count); err != nil {
		return err
	}
	return writeStackRequestSlotInfo(w, a.Source)
}

func (a *CraftingMarkSecondaryResultAction) readPayload(r *protocol.Reader) error {
	var err error
	a.ResultSlot, err = r.ReadByte()
	return err
}
func (a *CraftingMarkSecondaryResultAction) writePayload(w *protocol.Writer) error {
	return w.WriteByte(a.ResultSlot)
}

func (a *PlaceIntoBundleAction) readPayload(r *protocol.Reader) error {
	var err error
	if a.Count, err = r.ReadByte(); err != nil {
		return err
	}
	if err := readStackRequestSlotInfo(r, &a.Source); err != nil {
		return err
	}
	if err := readStackRequestSlotInfo(r, &a.Destination); err != nil {
		return err
	}
	a.BundleIndex, err = r.ReadByte()
	return err
}
func (a *PlaceIntoBundleAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteByte(a.Count); err != nil {
		return err
	}
	if err := writeStackRequestSlotInfo(w, a.Source); err != nil {
		return err
	}
	if err := writeStackRequestSlotInfo(w, a.Destination); err != nil {
		return err
	}
	return w.WriteByte(a.BundleIndex)
}

func (a *TakeFromBundleAction) readPayload(r *protocol.Reader) error {
	var err error
	if a.Count, err = r.ReadByte(); err != nil {
		return err
	}
	if err := readStackRequestSlotInfo(r, &a.Source); err != nil {
		return err
	}
	if err := readStackRequestSlotInfo(r, &a.Destination); err != nil {
		return err
	}
	a.BundleIndex, err = r.ReadByte()
	return err
}
func (a *TakeFromBundleAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteByte(a.Count); err != nil {
		return err
	}
	if err := writeStackRequestSlotInfo(w, a.Source); err != nil {
		return err
	}
	if err := writeStackRequestSlotInfo(w, a.Destination); err != nil {
		return err
	}
	return w.WriteByte(a.BundleIndex)
}

func (a *LabTableCombineAction) readPayload(r *protocol.Reader) error   { return nil }
func (a *LabTableCombineAction) writePayload(w *protocol.Writer) error  { return nil }

func (a *BeaconPaymentAction) readPayload(r *protocol.Reader) error {
	if err := r.ReadLInt32(&a.PrimaryEffect); err != nil {
		return err
	}
	return r.ReadLInt32(&a.SecondaryEffect)
}
func (a *BeaconPaymentAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteLInt32(a.PrimaryEffect); err != nil {
		return err
	}
	return w.WriteLInt32(a.SecondaryEffect)
}

func (a *MineBlockAction) readPayload(r *protocol.Reader) error {
	if err := r.ReadVarInt32(&a.SlotID); err != nil {
		return err
	}
	if err := r.ReadVarInt32(&a.ItemNetworkID); err != nil {
		return err
	}
	return r.ReadVarInt32(&a.ItemMetadata)
}
func (a *MineBlockAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteVarInt32(a.SlotID); err != nil {
		return err
	}
	if err := w.WriteVarInt32(a.ItemNetworkID); err != nil {
		return err
	}
	return w.WriteVarInt32(a.ItemMetadata)
}

func (a *CraftRecipeAction) readPayload(r *protocol.Reader) error  { return r.ReadVarUint32(&a.RecipeNetworkID) }
func (a *CraftRecipeAction) writePayload(w *protocol.Writer) error { return w.WriteVarUint32(a.RecipeNetworkID) }

func (a *CraftRecipeAutoAction) readPayload(r *protocol.Reader) error {
	if err := r.ReadVarUint32(&a.RecipeNetworkID); err != nil {
		return err
	}
	var err error
	a.RepetitionCount, err = r.ReadByte()
	return err
}
func (a *CraftRecipeAutoAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteVarUint32(a.RecipeNetworkID); err != nil {
		return err
	}
	return w.WriteByte(a.RepetitionCount)
}

func (a *CreativeCreateAction) readPayload(r *protocol.Reader) error {
	return r.ReadVarUint32(&a.CreativeItemNetworkID)
}
func (a *CreativeCreateAction) writePayload(w *protocol.Writer) error {
	return w.WriteVarUint32(a.CreativeItemNetworkID)
}

func (a *CraftRecipeOptionalAction) readPayload(r *protocol.Reader) error {
	if err := r.ReadVarUint32(&a.RecipeNetworkID); err != nil {
		return err
	}
	return r.ReadVarInt32(&a.FilterStringIndex)
}
func (a *CraftRecipeOptionalAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteVarUint32(a.RecipeNetworkID); err != nil {
		return err
	}
	return w.WriteVarInt32(a.FilterStringIndex)
}

func (a *GrindstoneAction) readPayload(r *protocol.Reader) error {
	if err := r.ReadVarUint32(&a.RecipeNetworkID); err != nil {
		return err
	}
	return r.ReadVarInt32(&a.Cost)
}
func (a *GrindstoneAction) writePayload(w *protocol.Writer) error {
	if err := w.WriteVarUint32(a.RecipeNetworkID); err != nil {
		return err
	}
	return w.WriteVarInt32(a.Cost)
}

func (a *LoomAction) readPayload(r *protocol.Reader) error  { return r.ReadVarUint32(&a.PatternIndex) }
func (a *LoomAction) writePayload(w *protocol.Writer) error { return w.WriteVarUint32(a.PatternIndex) }

func (a *DeprecatedCraftingNonImplementedAction) readPayload(r *protocol.Reader) error  { return nil }
func (a *DeprecatedCraftingNonImplementedAction) writePayload(w *protocol.Writer) error { return nil }
func (a *DeprecatedCraftingResultsAction) readPayload(r *protocol.Reader) error         { return nil }
func (a *DeprecatedCraftingResultsAction) writePayload(w *protocol.Writer) error        { return nil }

// newActionByTag returns a zero-valued action for the given canonical tag,
// or nil for an unrecognized tag. Dispatch is exhaustive over the closed
// union (§4.5.3): an unknown tag is a decode error, never a silent default.
func newActionByTag(canonical uint8) ItemStackRequestAction {
	switch canonical {
	case actionTake:
		return &TakeAction{}
	case actionPlace:
		return &PlaceAction{}
	case actionSwap:
		return &SwapAction{}
	case actionDrop:
		return &DropAction{}
	case actionDestroy:
		return &DestroyAction{}
	case actionCraftingConsumeInput:
		return &CraftingConsumeInputAction{}
	case actionCraftingMarkSecondaryResult:
		return &CraftingMarkSecondaryResultAction{}
	case actionPlaceIntoBundle:
		return &PlaceIntoBundleAction{}
	case actionTakeFromBundle:
		return &TakeFromBundleAction{}
	case actionLabTableCombine:
		return &LabTableCombineAction{}
	case actionBeaconPayment:
		return &BeaconPaymentAction{}
	case actionMineBlock:
		return &MineBlockAction{}
	case actionCraftRecipe:
		return &CraftRecipeAction{}
	case actionCraftRecipeAuto:
		return &CraftRecipeAutoAction{}
	case actionCreativeCreate:
		return &CreativeCreateAction{}
	case actionCraftRecipeOptional:
		return &CraftRecipeOptionalAction{}
	case actionGrindstone:
		return &GrindstoneAction{}
	case actionLoom:
		return &LoomAction{}
	case actionDeprecatedCraftingNonImplemented:
		return &DeprecatedCraftingNonImplementedAction{}
	case actionDeprecatedCraftingResults:
		return &DeprecatedCraftingResultsAction{}
	default:
		return nil
	}
}

func decodeAction(r *protocol.Reader) (ItemStackRequestAction, error) {
	wireTag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	canonical := canonicalActionTag(wireTag, r.ProtocolID())
	action := newActionByTag(canonical)
	if action == nil {
		return nil, &DecodeError{Packet: "ItemStackRequest", Reason: "unknown action type"}
	}
	if err := action.readPayload(r); err != nil {
		return nil, err
	}
	return action, nil
}

func encodeAction(w *protocol.Writer, a ItemStackRequestAction) error {
	if err := w.WriteByte(wireActionTag(a.ActionTag(), w.ProtocolID())); err != nil {
		return err
	}
	return a.writePayload(w)
}

// ItemStackRequest is the item-stack-request codec (§4.5): a discriminated
// union of inventory-mutation actions plus a small trailer of filter
// strings used by text-input-bearing actions (e.g. anvil renames).
type ItemStackRequest struct {
	RequestID         int32
	Actions            []ItemStackRequestAction
	FilterStrings      []string
	FilterStringCause  int32
}

func (pk *ItemStackRequest) ID() uint32           { return IDItemStackRequest }
func (pk *ItemStackRequest) Direction() Direction { return ServerBound }
func (pk *ItemStackRequest) Handle(h Handler) bool {
	return h.HandleItemStackRequest(pk)
}

func (pk *ItemStackRequest) DecodePayload(r *protocol.Reader) error {
	if err := r.ReadGenericTypeNetworkID(&pk.RequestID); err != nil {
		return err
	}

	var actionCount uint32
	if err := r.ReadVarUint32(&actionCount); err != nil {
		return err
	}
	pk.Actions = make([]ItemStackRequestAction, actionCount)
	for i := range pk.Actions {
		a, err := decodeAction(r)
		if err != nil {
			return err
		}
		pk.Actions[i] = a
	}

	if r.ProtocolID() >= protocol.Proto1_16_200 {
		var filterCount uint32
		if err := r.ReadVarUint32(&filterCount); err != nil {
			return err
		}
		pk.FilterStrings = make([]string, filterCount)
		for i := range pk.FilterStrings {
			if err := r.ReadString(&pk.FilterStrings[i]); err != nil {
				return err
			}
		}
	}

	if r.ProtocolID() >= protocol.Proto1_19_50 {
		return r.ReadLInt32(&pk.FilterStringCause)
	}
	pk.FilterStringCause = 0
	return nil
}

func (pk *ItemStackRequest) EncodePayload(w *protocol.Writer) error {
	if err := w.WriteGenericTypeNetworkID(pk.RequestID); err != nil {
		return err
	}

	if err := w.WriteVarUint32(uint32(len(pk.Actions))); err != nil {
		return err
	}
	for _, a := range pk.Actions {
		if err := encodeAction(w, a); err != nil {
			return err
		}
	}

	if w.ProtocolID() >= protocol.Proto1_16_200 {
		if err := w.WriteVarUint32(uint32(len(pk.FilterStrings))); err != nil {
			return err
		}
		for _, s := range pk.FilterStrings {
			if err := w.WriteString(s); err != nil {
				return err
			}
		}
	}

	if w.ProtocolID() >= protocol.Proto1_19_50 {
		return w.WriteLInt32(pk.FilterStringCause)
	}
	return nil
}
