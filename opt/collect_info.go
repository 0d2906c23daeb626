package opt

import "github.com/gogpu/maxas/ir"

// CollectInfo fills the program's resource usage summary from the
// optimized IR. Backends and the embedding driver read it to build
// binding tables and pipeline state.
func CollectInfo(program *ir.Program) {
	info := &program.Info
	for _, fn := range program.Functions {
		for _, block := range fn.Blocks {
			for _, inst := range block.Instructions() {
				visitUsage(info, inst)
			}
		}
	}
}

func visitUsage(info *ir.Info, inst *ir.Inst) {
	switch inst.Op() {
	case ir.OpGetCbuf:
		if binding := inst.Arg(0); binding.IsImmediate() {
			info.ConstantBufferMask |= 1 << binding.U32()
		}
	case ir.OpGetAttribute:
		if attr := inst.Arg(0).Attribute(); ir.IsGeneric(attr) {
			info.InputGenerics[ir.GenericAttributeIndex(attr)] = true
		}
	case ir.OpSetAttribute:
		attr := inst.Arg(0).Attribute()
		switch {
		case ir.IsGeneric(attr):
			info.StoresGenerics[ir.GenericAttributeIndex(attr)] = true
		case attr >= ir.AttributePositionX && attr <= ir.AttributePositionW:
			info.StoresPosition = true
		}
	case ir.OpSetFragDepth:
		info.StoresFragDepth = true
	case ir.OpWorkgroupID:
		info.UsesWorkgroupID = true
	case ir.OpLocalInvocationID:
		info.UsesLocalInvocationID = true
	case ir.OpVoteAll, ir.OpVoteAny, ir.OpVoteEqual, ir.OpSubgroupBallot:
		info.UsesSubgroupVote = true
	case ir.OpLoadStorage32, ir.OpLoadStorage64, ir.OpLoadStorage128,
		ir.OpWriteStorage32, ir.OpWriteStorage64, ir.OpWriteStorage128:
		if binding := inst.Arg(0); binding.IsImmediate() {
			info.StorageBuffersUsed |= 1 << binding.U32()
		}
	case ir.OpImageSampleImplicitLod, ir.OpImageSampleExplicitLod,
		ir.OpImageSampleDrefImplicitLod, ir.OpImageSampleDrefExplicitLod,
		ir.OpImageGather, ir.OpImageGatherDref, ir.OpImageFetch,
		ir.OpImageQueryDimensions, ir.OpImageQueryLod:
		texInfo := inst.TextureInfo()
		desc := ir.TextureDescriptor{
			Type:    texInfo.Type,
			IsDepth: texInfo.IsDepth,
			Count:   1,
		}
		if texInfo.Type == ir.TextureBuffer {
			growDescriptors(&info.TextureBufferDescriptors, texInfo.DescriptorIndex, desc)
		} else {
			growDescriptors(&info.TextureDescriptors, texInfo.DescriptorIndex, desc)
		}
	}
}

func growDescriptors(descs *[]ir.TextureDescriptor, index uint32, desc ir.TextureDescriptor) {
	for uint32(len(*descs)) <= index {
		*descs = append(*descs, ir.TextureDescriptor{})
	}
	(*descs)[index] = desc
}
